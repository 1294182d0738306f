package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/depthprobe/probe"
)

// MarkerBrowser lists live markers in a sortable-free table and exposes
// spawn/clear buttons. OnSpawn and OnClear are invoked from the UI thread.
type MarkerBrowser struct {
	Container *probe.Container
	OnSpawn   func()
	OnClear   func()

	selectedID uint32
	hasSelect  bool
}

// NewMarkerBrowser creates a browser over the given container.
func NewMarkerBrowser(container *probe.Container, onSpawn, onClear func()) *MarkerBrowser {
	return &MarkerBrowser{
		Container: container,
		OnSpawn:   onSpawn,
		OnClear:   onClear,
	}
}

// Render draws the marker browser window.
func (mb *MarkerBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 380), imgui.CondOnce)

	if !imgui.BeginV("Markers", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Spawn") && mb.OnSpawn != nil {
		mb.OnSpawn()
	}
	imgui.SameLine()
	if imgui.Button("Clear") && mb.OnClear != nil {
		mb.OnClear()
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("live: %d", mb.Container.Len()))

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("MarkerTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Label")
		imgui.TableSetupColumn("Distance")
		imgui.TableSetupColumn("Size")
		imgui.TableSetupColumn("Color")
		imgui.TableHeadersRow()

		for _, m := range mb.Container.Markers() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := mb.hasSelect && mb.selectedID == m.ID
			if imgui.SelectableBoolV(m.Label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				mb.selectedID = m.ID
				mb.hasSelect = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2fm", m.Distance))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", m.Size))

			imgui.TableNextColumn()
			imgui.TextColored(colorVec4(m.Color), "##")
		}

		imgui.EndTable()
	}

	if mb.hasSelect {
		if m, ok := mb.Container.Get(mb.selectedID); ok {
			imgui.Separator()
			imgui.Text(fmt.Sprintf("pos: (%.2f, %.2f, %.2f)",
				m.Position.X(), m.Position.Y(), m.Position.Z()))
		}
	}

	imgui.End()
}

func colorVec4(c probe.Color) imgui.Vec4 {
	return imgui.NewVec4(float32(c[0])/255, float32(c[1])/255, float32(c[2])/255, 1)
}
