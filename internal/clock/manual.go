package clock

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by explicit calls to Advance.
// It is not safe for concurrent use.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner     *Manual
	seq       uint64
	due       time.Duration
	period    time.Duration
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.owner.remove(t)
}

// NewManual returns a clock at time zero with no tasks.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of live tasks.
func (m *Manual) Pending() int { return len(m.tasks) }

// Every schedules fn every d, first firing at now+d.
func (m *Manual) Every(d time.Duration, fn func()) Task {
	if d <= 0 {
		d = time.Nanosecond
	}
	return m.add(d, d, fn)
}

// After schedules fn once at now+d.
func (m *Manual) After(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, fn)
}

func (m *Manual) add(d, period time.Duration, fn func()) *manualTask {
	m.seq++
	t := &manualTask{owner: m, seq: m.seq, due: m.now + d, period: period, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (m *Manual) remove(t *manualTask) {
	for i, cur := range m.tasks {
		if cur == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

// Advance moves time forward by d, firing every task that comes due in order
// of due time, then registration order. Tasks scheduled by callbacks fire in
// the same call if they come due before the new time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			next.cancelled = true
			m.remove(next)
		}
		next.fn()
	}
	m.now = target
}

// Step advances by d n times, which is how a frame loop drives the clock.
func (m *Manual) Step(d time.Duration, n int) {
	for range n {
		m.Advance(d)
	}
}

func (m *Manual) nextDue(limit time.Duration) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if m.tasks[0].due > limit {
		return nil
	}
	return m.tasks[0]
}
