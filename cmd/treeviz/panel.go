package main

import (
	"fmt"

	"github.com/goliath-spatial/rtreeidx/ui"
)

// buildPanel wires the control panel: a draggable Panel frame carrying a
// live per-level node-count legend (colored to match drawTree's level
// outlines), plus the action buttons — all added directly as Controller
// children, added before the buttons so the buttons claim input first.
func (tv *treeviz) buildPanel() {
	frame := ui.NewPanel(10, 10, 220, 150, "treeviz controls")
	frame.Stats = tv.levelStats
	tv.ui.AddChild(frame)

	tv.ui.AddChild(insertPointsButton(tv))
	tv.ui.AddChild(insertPolygonButton(tv))
	tv.ui.AddChild(toggleLeavesButton(tv))
	tv.ui.AddChild(toggleAllLevelsButton(tv))
	tv.ui.AddChild(exportButton(tv))
}

// levelStats reports one legend row per tree level, colored the same as
// drawTree's level outlines so the panel and the canvas agree.
func (tv *treeviz) levelStats() []ui.LevelStat {
	levels := tv.tree.GetLevels()
	stats := make([]ui.LevelStat, len(levels))
	for level, nodes := range levels {
		stats[level] = ui.LevelStat{Color: levelColors[level%len(levelColors)], Count: len(nodes)}
	}
	return stats
}

func insertPointsButton(tv *treeviz) *ui.Button {
	return ui.NewButton(20, 170, "Insert 50 pts", func() {
		tv.insertRandomPoints(50, 500)
	}).WithBadge(func() string {
		return fmt.Sprintf("%d entries", len(tv.tree.GetLeafEntries()))
	})
}

func insertPolygonButton(tv *treeviz) *ui.Button {
	return ui.NewButton(20, 210, "Insert polygon", func() {
		tv.insertRandomPolygon(500, 30, 6)
	})
}

func toggleLeavesButton(tv *treeviz) *ui.Button {
	return ui.NewButton(20, 250, "Leaves only", func() {
		levels := tv.tree.GetLevels()
		tv.showLevels = map[int]bool{len(levels) - 1: true}
	})
}

func toggleAllLevelsButton(tv *treeviz) *ui.Button {
	return ui.NewButton(20, 290, "Show all levels", func() {
		tv.showLevels = map[int]bool{}
	})
}

func exportButton(tv *treeviz) *ui.Button {
	return ui.NewButton(20, 330, "Export", func() {
		tv.exportCurrentTree()
	})
}
