// Package stage hosts a slide button on [Ebitengine].
//
// A [SlideView] is the control's view tree (track, handle, label and loading
// spinner) and implements slidebutton.Layout. An [Engine] implements
// slidebutton.AnimationEngine: it tweens the view between the idle and
// loading scenes and plays the tease translation with [gween]. A [Scene]
// ties both to a slidebutton.Button, routes mouse and touch input to it and
// draws the tree.
//
//	scene, err := stage.NewScene(stage.DefaultViewStyle(), cfg,
//		stage.WithPosition(40, 100))
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene.Button().AddOnSlideListener(listener)
//	if err := stage.Run(scene, stage.RunConfig{Title: "Pay", Width: 400, Height: 260}); err != nil {
//		log.Fatal(err)
//	}
//
// # Input
//
// The first pointer pressed inside the control captures the gesture and keeps
// it until release, even when it leaves the control. A touch that disappears
// is released at its last position; losing window focus cancels the gesture.
//
// # Automated testing
//
// InjectPress, InjectMove, InjectRelease, InjectTap, InjectDrag and
// InjectCancel queue synthetic input consumed one event per frame. A
// [TestRunner] loaded from JSON sequences injections, button calls and
// expectations:
//
//	{"steps": [
//		{"action": "drag", "fromX": 20, "fromY": 28, "toX": 300, "toY": 28, "frames": 8},
//		{"action": "expect", "state": "idle", "locked": true, "scene": "loading"},
//		{"action": "reset"},
//		{"action": "wait", "frames": 20},
//		{"action": "expect", "locked": false}
//	]}
//
// [Scene.RunScript] drives such a script without opening a window.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package stage
