// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate the marker overlay into Ebiten game loops: call
// BeginFrame before rendering panels, EndFrame after, and Draw in ebiten's
// Draw callback.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates the backend, opens the window, and disables imgui.ini
// persistence so the overlay layout is deterministic between runs.
func New(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend}
}
