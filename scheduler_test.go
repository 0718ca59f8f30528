package slidebutton

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	var s Scheduler
	fired := 0
	task := s.After(200*time.Millisecond, func() { fired++ })

	s.Update(0.1)
	if fired != 0 || !task.Pending() {
		t.Fatalf("fired early: fired=%d pending=%v", fired, task.Pending())
	}
	s.Update(0.1)
	if fired != 1 {
		t.Fatalf("fired = %d after 200ms, want 1", fired)
	}
	if task.Pending() || s.Pending() != 0 {
		t.Error("task still pending after firing")
	}
	s.Update(1)
	if fired != 1 {
		t.Errorf("task fired twice")
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	fired := false
	task := s.After(50*time.Millisecond, func() { fired = true })

	if !task.Cancel() {
		t.Fatal("Cancel = false on a pending task")
	}
	if task.Cancel() {
		t.Error("second Cancel = true")
	}
	s.Update(1)
	if fired {
		t.Error("cancelled task fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d", s.Pending())
	}

	var nilTask *Task
	if nilTask.Cancel() || nilTask.Pending() {
		t.Error("nil task reports pending")
	}
}

func TestSchedulerOrderAndReentry(t *testing.T) {
	var s Scheduler
	var got []int
	s.After(0, func() {
		got = append(got, 1)
		s.After(0, func() { got = append(got, 3) })
	})
	s.After(0, func() { got = append(got, 2) })

	s.Update(0.016)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("first update ran %v, want [1 2]", got)
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}
	s.Update(0.016)
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("second update ran %v, want [1 2 3]", got)
	}
}
