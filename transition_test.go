package slidebutton

import (
	"testing"
	"time"
)

func newTestCoordinator(cfg Config) (*Coordinator, *fakeEngine, *fakeLayout, *Scheduler) {
	engine := &fakeEngine{}
	layout := newFakeLayout()
	s := &Scheduler{}
	content := cfg.Content()
	return newCoordinator(engine, layout, s, &content, cfg), engine, layout, s
}

func TestCoordinatorLoadingLocks(t *testing.T) {
	c, engine, layout, _ := newTestCoordinator(DefaultConfig())

	c.ToLoadingScene()
	if !c.Locked() {
		t.Fatal("not locked")
	}
	if engine.lastScene() != (sceneRequest{SceneLoading, TransitionToLoading}) {
		t.Errorf("scene = %v", engine.lastScene())
	}
	if len(layout.content) != 1 {
		t.Errorf("content applied %d times, want 1", len(layout.content))
	}

	c.ApplyEnabled(false)
	if layout.handleAlpha != 1 {
		t.Error("ApplyEnabled dimmed a locked widget")
	}

	c.ToIdleScene(false)
	if c.Locked() {
		t.Error("still locked after ToIdleScene")
	}
	if layout.handleAlpha != 0.5 || layout.trackEnabled {
		t.Error("ToIdleScene did not apply the disabled affordance")
	}
}

func TestCoordinatorSnapBackKeepsLock(t *testing.T) {
	c, engine, _, _ := newTestCoordinator(DefaultConfig())
	c.ToLoadingScene()
	c.SnapBack()
	if !c.Locked() {
		t.Error("SnapBack cleared the lock")
	}
	if engine.lastScene() != (sceneRequest{SceneIdle, TransitionReset}) {
		t.Errorf("scene = %v", engine.lastScene())
	}
}

func TestCoordinatorTease(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TeaseRatio = 0.2
	cfg.TeaseDuration = 300 * time.Millisecond
	c, engine, _, _ := newTestCoordinator(cfg)

	c.Tease(400)
	want := translation{PartHandle, [3]float64{0, 80, 0}, 300 * time.Millisecond}
	if len(engine.translations) != 1 || engine.translations[0] != want {
		t.Errorf("translations = %v, want [%v]", engine.translations, want)
	}
}

func TestCoordinatorScheduleReset(t *testing.T) {
	tests := []struct {
		name    string
		policy  ResetPolicy
		pending int
	}{
		{"coalesce", ResetCoalesce, 1},
		{"every-call", ResetEveryCall, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ResetPolicy = tt.policy
			c, engine, _, s := newTestCoordinator(cfg)

			fired := 0
			reset := func() { fired++ }
			first := c.ScheduleReset(reset)
			c.ScheduleReset(reset)
			c.ScheduleReset(reset)

			if got := c.PendingResets(); got != tt.pending {
				t.Errorf("PendingResets = %d, want %d", got, tt.pending)
			}
			if tt.policy == ResetCoalesce && first.Pending() {
				t.Error("coalesced reset still pending")
			}

			s.Update(0.5)
			if fired != tt.pending || engine.ends != tt.pending {
				t.Errorf("fired = %d ends = %d, want %d", fired, engine.ends, tt.pending)
			}
			if c.PendingResets() != 0 {
				t.Errorf("PendingResets after firing = %d", c.PendingResets())
			}
		})
	}
}

func TestCoordinatorZeroResetDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResetDelay = 0
	c, engine, _, s := newTestCoordinator(cfg)

	c.ScheduleReset(func() { c.ToIdleScene(true) })
	if engine.ends != 0 {
		t.Fatal("reset ran synchronously")
	}
	s.Update(0)
	if engine.ends != 1 {
		t.Errorf("ends = %d after next update, want 1", engine.ends)
	}
}
