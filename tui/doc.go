// Package tui hosts a slide button in a terminal with Bubble Tea.
//
// [CellView] lays the control out on one row of cells and renders it with
// lipgloss. [NewEngine] animates it with the same gween scenes as the
// window host, stepped by a fixed 30 Hz tick. [Model] routes mouse input
// through a bubblezone manager: a left press inside the row captures the
// gesture until release, and losing terminal focus cancels it.
//
//	m, err := tui.NewModel(tui.DefaultCellStyle(), cfg)
//	if err != nil {
//		return err
//	}
//	m.Button().AddOnSlideListener(listener)
//	return tui.Run(ctx, m)
package tui
