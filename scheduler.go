package slidebutton

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Task is a callback deferred on a Scheduler.
type Task struct {
	timer     *gween.Tween
	fn        func()
	fired     bool
	cancelled bool
}

// Cancel stops the task from firing. Reports whether it was still pending.
func (t *Task) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task has neither fired nor been cancelled.
func (t *Task) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Scheduler runs deferred callbacks on the caller's loop. Time only advances
// through Update, so callbacks fire on the same goroutine that drives the UI.
//
// There is no global scheduler: each Button owns one and the host calls
// Button.Update every frame.
type Scheduler struct {
	tasks []*Task
}

// After schedules fn to run once d has elapsed. A non-positive d fires on the
// next Update.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{
		timer: gween.New(0, 1, float32(d.Seconds()), ease.Linear),
		fn:    fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Update advances all timers by dt seconds and runs the tasks that came due,
// in scheduling order. Tasks scheduled by a callback wait for the next Update.
func (s *Scheduler) Update(dt float32) {
	if len(s.tasks) == 0 {
		return
	}
	due := s.tasks
	s.tasks = nil

	var keep []*Task
	for _, t := range due {
		if t.cancelled {
			continue
		}
		if _, finished := t.timer.Update(dt); !finished {
			keep = append(keep, t)
			continue
		}
		t.fired = true
		t.fn()
	}
	s.tasks = append(keep, s.tasks...)
}

// Pending returns the number of tasks waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
