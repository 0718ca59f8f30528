// Package slidebutton implements the gesture core of a slide-to-confirm
// control: a handle the user drags along a track past a threshold to confirm
// an action.
//
// The core converts pointer events into track geometry updates, decides
// whether a released drag confirms, and turns the outcome into named scene
// requests. It never draws. A host supplies a [Layout] (the view tree it
// measures and resizes) and an [AnimationEngine] (which plays scenes), feeds
// [PointerEvent] values to [Button.HandlePointer], and calls [Button.Update]
// once per frame so the deferred reset can fire.
//
//	b, err := slidebutton.New(view, engine, slidebutton.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	b.SetText("Slide to pay")
//	b.AddOnSlideListener(slidebutton.Listen(func(b *slidebutton.Button) error {
//		go pay() // the button stays in the loading scene until Reset
//		return nil
//	}))
//
// Two hosts ship with the module: package stage renders the control with
// [Ebitengine] and animates it with [gween]; package tui renders it in a
// terminal with Bubble Tea.
//
// # Gesture
//
// A press on the handle arms the gesture. Motion turns it into a drag: the
// track keeps its right edge and its left edge follows the handle, clamped
// between the resting position and the far bound. On release the drag
// confirms when the handle moved further than [DefaultAcceptanceRatio] of the
// available travel. Confirmation locks the widget in the loading scene and
// notifies every listener once, in registration order; a short drag snaps
// back. A tap without motion plays the tease animation.
//
// # Configuration
//
// [Config] carries the styled attributes (icon, text, text color) and the
// tunables. [LoadConfig] reads TOML or YAML files.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package slidebutton
