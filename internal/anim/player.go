package anim

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/slidebutton"
)

// SceneFunc lists the property values a scene settles on.
type SceneFunc func() []Target

// Player implements slidebutton.AnimationEngine over a set of named scenes
// and transition lengths. A host supplies the scenes and resolves parts to the
// property their translation moves.
type Player struct {
	logger      *slog.Logger
	scenes      map[slidebutton.SceneID]SceneFunc
	transitions map[slidebutton.TransitionID]time.Duration
	offset      func(slidebutton.Part) *float64

	scene      slidebutton.SceneID
	transition *Group
	keyframes  []*Keyframes
}

var _ slidebutton.AnimationEngine = (*Player)(nil)

// NewPlayer creates a player. A nil logger uses slog.Default.
func NewPlayer(
	scenes map[slidebutton.SceneID]SceneFunc,
	transitions map[slidebutton.TransitionID]time.Duration,
	offset func(slidebutton.Part) *float64,
	logger *slog.Logger,
) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		logger:      logger,
		scenes:      scenes,
		transitions: transitions,
		offset:      offset,
	}
}

// ApplyScene starts a transition to scene from whatever is on screen. A
// transition already in flight is abandoned where it stands. Unknown scenes
// are logged and ignored; unknown transitions apply the scene instantly.
func (p *Player) ApplyScene(scene slidebutton.SceneID, transition slidebutton.TransitionID) {
	fn, ok := p.scenes[scene]
	if !ok {
		p.logger.Warn("unknown scene", "scene", scene, "transition", transition)
		return
	}
	d, ok := p.transitions[transition]
	if !ok {
		p.logger.Warn("unknown transition, applying scene instantly", "scene", scene, "transition", transition)
	}
	p.scene = scene
	p.transition = NewGroup(fn(), float32(d.Seconds()), ease.InOutQuad)
	if d <= 0 {
		p.transition.Finish()
		p.transition = nil
	}
	p.logger.Debug("scene transition", "scene", scene, "transition", transition, "duration", d)
}

// EndTransitions force-completes the scene transition and every translation.
func (p *Player) EndTransitions() {
	if p.transition != nil {
		p.transition.Finish()
		p.transition = nil
	}
	for _, k := range p.keyframes {
		k.Finish()
	}
	clear(p.keyframes)
	p.keyframes = p.keyframes[:0]
}

// Translate eases part's offset through offsets over d with ease-in-out legs.
func (p *Player) Translate(part slidebutton.Part, offsets [3]float64, d time.Duration) {
	field := p.offset(part)
	if field == nil {
		p.logger.Warn("part cannot be translated", "part", part)
		return
	}
	p.keyframes = append(p.keyframes, NewKeyframes(field, offsets[:], float32(d.Seconds()), ease.InOutSine))
}

// Update advances every animation by dt seconds.
func (p *Player) Update(dt float32) {
	if p.transition != nil {
		p.transition.Update(dt)
		if p.transition.Done {
			p.transition = nil
		}
	}
	n := 0
	for _, k := range p.keyframes {
		k.Update(dt)
		if !k.Done() {
			p.keyframes[n] = k
			n++
		}
	}
	clear(p.keyframes[n:])
	p.keyframes = p.keyframes[:n]
}

// Scene returns the last scene applied.
func (p *Player) Scene() slidebutton.SceneID {
	return p.scene
}

// Busy reports whether any animation is in flight.
func (p *Player) Busy() bool {
	return p.transition != nil || len(p.keyframes) > 0
}
