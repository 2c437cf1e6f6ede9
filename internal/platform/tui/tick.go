// Package tui provides the Bubble Tea front end for the game: the program
// model, input mapping, rendering and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/clock"
)

// timerMsg is delivered when a scheduled task comes due.
type timerMsg struct {
	id uint64
}

type teaTask struct {
	id     uint64
	period time.Duration // 0 for one-shot tasks
	fn     func()
	sched  *Scheduler
}

func (t *teaTask) Cancel() {
	delete(t.sched.tasks, t.id)
}

// Scheduler implements clock.Scheduler on top of tea.Tick. Each armed task
// produces a command that the model must return from Update; callbacks run
// inside Update on the program goroutine.
type Scheduler struct {
	nextID  uint64
	tasks   map[uint64]*teaTask
	pending []tea.Cmd
}

var _ clock.Scheduler = (*Scheduler)(nil)

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[uint64]*teaTask)}
}

// Every runs fn every d until canceled.
func (s *Scheduler) Every(d time.Duration, fn func()) clock.Task {
	return s.add(d, d, fn)
}

// After runs fn once after d unless canceled first.
func (s *Scheduler) After(d time.Duration, fn func()) clock.Task {
	return s.add(d, 0, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) *teaTask {
	s.nextID++
	t := &teaTask{id: s.nextID, period: period, fn: fn, sched: s}
	s.tasks[t.id] = t
	s.arm(t.id, d)
	return t
}

func (s *Scheduler) arm(id uint64, d time.Duration) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// Fire runs the task behind msg. Messages for canceled tasks are dropped.
func (s *Scheduler) Fire(msg timerMsg) {
	t, ok := s.tasks[msg.id]
	if !ok {
		return
	}
	if t.period == 0 {
		delete(s.tasks, t.id)
	}
	t.fn()
	// The callback may have canceled its own task.
	if _, still := s.tasks[t.id]; still && t.period > 0 {
		s.arm(t.id, t.period)
	}
}

// Drain returns the commands armed since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of live tasks.
func (s *Scheduler) Active() int { return len(s.tasks) }
