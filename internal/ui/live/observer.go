package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"keyseek/internal/solver"
)

// Controller runs the live UI and implements solver.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnSolveStart forwards run start events to the UI.
func (c *Controller) OnSolveStart(runID string, quizLength, attemptCount int) {
	c.send(Event{Kind: EventSolveStart, RunID: runID, QuizLength: quizLength, AttemptCount: attemptCount})
}

// OnGenerate forwards the initial candidate count to the UI.
func (c *Controller) OnGenerate(seed string, seedScore, candidates int) {
	c.send(Event{Kind: EventGenerate, Seed: seed, SeedScore: seedScore, Candidates: candidates})
}

// OnReduceStep forwards reduction updates to the UI.
func (c *Controller) OnReduceStep(step solver.StepStat) {
	c.send(Event{Kind: EventReduceStep, Step: step})
}

// OnSolveEnd forwards completion to the UI and closes it.
func (c *Controller) OnSolveEnd(stats solver.Stats) {
	c.send(Event{Kind: EventSolveEnd, Stats: stats})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
