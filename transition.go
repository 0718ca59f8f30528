package slidebutton

import "time"

// ResetPolicy decides what happens when Reset is called while an earlier
// Reset is still waiting for its delay.
type ResetPolicy uint8

const (
	// ResetCoalesce cancels the pending reset and schedules a fresh one, so
	// the idle scene is applied once.
	ResetCoalesce ResetPolicy = iota
	// ResetEveryCall lets every scheduled reset fire.
	ResetEveryCall
)

func (p ResetPolicy) String() string {
	if p == ResetEveryCall {
		return "every-call"
	}
	return "coalesce"
}

// Coordinator turns gesture outcomes into scene requests and owns the locked
// flag. At most one scene is current; the engine resolves overlapping
// requests by starting from whatever state is on screen.
type Coordinator struct {
	engine    AnimationEngine
	layout    Layout
	scheduler *Scheduler
	content   *Content

	locked bool

	resetDelay    time.Duration
	resetPolicy   ResetPolicy
	pendingResets []*Task

	teaseRatio    float64
	teaseDuration time.Duration
}

func newCoordinator(engine AnimationEngine, layout Layout, scheduler *Scheduler, content *Content, cfg Config) *Coordinator {
	return &Coordinator{
		engine:        engine,
		layout:        layout,
		scheduler:     scheduler,
		content:       content,
		resetDelay:    cfg.ResetDelay,
		resetPolicy:   cfg.ResetPolicy,
		teaseRatio:    cfg.TeaseRatio,
		teaseDuration: cfg.TeaseDuration,
	}
}

// Locked reports whether the loading scene holds the widget.
func (c *Coordinator) Locked() bool {
	return c.locked
}

// ToLoadingScene locks the widget and requests the loading scene. Calling it
// again while locked requests the scene again but changes nothing else.
func (c *Coordinator) ToLoadingScene() {
	c.locked = true
	c.engine.ApplyScene(SceneLoading, TransitionToLoading)
	c.applyContent()
}

// ToIdleScene requests the idle scene, unlocks the widget and restores the
// enabled or dimmed affordance.
func (c *Coordinator) ToIdleScene(enabled bool) {
	c.engine.ApplyScene(SceneIdle, TransitionReset)
	c.applyContent()
	c.locked = false
	c.ApplyEnabled(enabled)
}

// SnapBack animates an aborted drag back to the idle scene without touching
// the locked flag.
func (c *Coordinator) SnapBack() {
	c.engine.ApplyScene(SceneIdle, TransitionReset)
	c.applyContent()
}

// Tease slides the handle out and back by teaseRatio of totalWidth.
func (c *Coordinator) Tease(totalWidth float64) {
	end := totalWidth * c.teaseRatio
	c.engine.Translate(PartHandle, [3]float64{0, end, 0}, c.teaseDuration)
}

// ApplyEnabled dims or restores the affordance. Ignored while locked.
func (c *Coordinator) ApplyEnabled(enabled bool) {
	if c.locked {
		return
	}
	alpha := undimmedAlpha
	if !enabled {
		alpha = dimmedAlpha
	}
	c.layout.SetTrackEnabled(enabled)
	c.layout.SetHandleAlpha(alpha)
	c.layout.SetLabelAlpha(alpha)
}

// ScheduleReset defers reset by the configured delay. When the task fires it
// first force-completes any transition in flight, then runs reset.
func (c *Coordinator) ScheduleReset(reset func()) *Task {
	if c.resetPolicy == ResetCoalesce {
		for _, t := range c.pendingResets {
			t.Cancel()
		}
		c.pendingResets = c.pendingResets[:0]
	}
	var task *Task
	task = c.scheduler.After(c.resetDelay, func() {
		c.forget(task)
		c.engine.EndTransitions()
		reset()
	})
	c.pendingResets = append(c.pendingResets, task)
	return task
}

// PendingResets returns the number of resets waiting for their delay.
func (c *Coordinator) PendingResets() int {
	n := 0
	for _, t := range c.pendingResets {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (c *Coordinator) forget(task *Task) {
	for i, t := range c.pendingResets {
		if t == task {
			c.pendingResets = append(c.pendingResets[:i], c.pendingResets[i+1:]...)
			return
		}
	}
}

func (c *Coordinator) applyContent() {
	c.layout.ApplyContent(*c.content)
}
