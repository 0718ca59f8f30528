package slidebutton

import (
	"errors"
	"strings"
	"testing"
)

func TestListenerRegistryOrderAndDuplicates(t *testing.T) {
	var r ListenerRegistry
	var got []string
	a := Listen(func(*Button) error { got = append(got, "a"); return nil })
	b := Listen(func(*Button) error { got = append(got, "b"); return nil })

	r.Add(a, nil, b, a)
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (nil skipped)", r.Len())
	}
	if err := r.NotifyAll(nil); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, "") != "aba" {
		t.Errorf("order = %v, want [a b a]", got)
	}

	if !r.Remove(a) {
		t.Fatal("Remove(a) = false")
	}
	got = nil
	r.NotifyAll(nil)
	if strings.Join(got, "") != "ba" {
		t.Errorf("after Remove order = %v, want [b a]", got)
	}

	other := Listen(func(*Button) error { return nil })
	if r.Remove(other) {
		t.Error("removed a listener that was never added")
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len after Clear = %d", r.Len())
	}
	if err := r.NotifyAll(nil); err != nil {
		t.Errorf("NotifyAll on empty registry: %v", err)
	}
}

func TestListenerRegistryJoinsErrors(t *testing.T) {
	var r ListenerRegistry
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	ran := 0
	r.Add(
		Listen(func(*Button) error { ran++; return errA }),
		Listen(func(*Button) error { ran++; return nil }),
		Listen(func(*Button) error { ran++; return errC }),
	)

	err := r.NotifyAll(nil)
	if ran != 3 {
		t.Errorf("ran %d listeners, want 3", ran)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errC) {
		t.Fatalf("err = %v, want both failures", err)
	}
	if !strings.Contains(err.Error(), "slide listener 2") {
		t.Errorf("err = %q, want listener index", err)
	}
}

func TestListenerRegistrySnapshot(t *testing.T) {
	var r ListenerRegistry
	calls := 0
	late := Listen(func(*Button) error { calls++; return nil })
	r.Add(Listen(func(*Button) error {
		calls++
		r.Add(late)
		return nil
	}))

	r.NotifyAll(nil)
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (listener added mid-notify waits)", calls)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}
