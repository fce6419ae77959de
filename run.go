package spruce

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays FPS/TPS counters in the top-left corner.
	ShowFPS bool
	// Camera overrides the default orbit camera when non-nil.
	Camera *Camera
}

// Run creates a window, a BillboardRenderer, and a game loop for the scene,
// and blocks until the window closes. The space key toggles the formation;
// the mouse hovers and clicks ornaments.
//
// For full control, implement ebiten.Game yourself: call Scene.Update and
// Scene.Compose from your Update/Draw and submit to your own Renderer.
func Run(scene *Scene, cfg RunConfig) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 960
	}
	if height <= 0 {
		height = 720
	}

	cam := cfg.Camera
	if cam == nil {
		cam = NewCamera()
	}
	renderer := NewBillboardRenderer(cam, width, height)
	scene.SetRenderer(renderer)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Title)

	g := &game{
		scene:    scene,
		renderer: renderer,
		camera:   cam,
		showFPS:  cfg.ShowFPS,
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run scene: %w", err)
	}
	return nil
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene    *Scene
	renderer *BillboardRenderer
	camera   *Camera
	pointer  PointerTracker
	showFPS  bool

	spaceDown bool
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.camera.Update(dt)

	// Picking runs against the sprites projected for the previous frame;
	// at one frame of latency the difference is imperceptible.
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.pointer.Process(g.scene, g.renderer, float64(mx), float64(my), pressed)

	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	if space && !g.spaceDown {
		g.scene.ToggleFormation()
	}
	g.spaceDown = space

	g.scene.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.BeginFrame()
	g.scene.Compose()
	g.renderer.Draw(screen)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
