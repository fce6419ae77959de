package spruce

import (
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WhitePixel is a 1x1 white image used to render billboard sprites.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// toRGBA converts a Color to a premultiplied 8-bit RGBA, clamping each
// component to [0, 1].
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	a := math.Min(math.Max(c.A, 0), 1)
	return color.RGBA{
		R: clamp(c.R * a),
		G: clamp(c.G * a),
		B: clamp(c.B * a),
		A: clamp(a),
	}
}

// --- Camera ---

// swingAnim holds active swing-to tweens for camera yaw and pitch.
type swingAnim struct {
	tweenYaw   *gween.Tween
	tweenPitch *gween.Tween
	doneYaw    bool
	donePitch  bool
}

// Camera is an orbit camera: it looks at Target from a point Distance away,
// positioned by Yaw (around the vertical axis) and Pitch (above the horizon).
type Camera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64
	Pitch    float64
	// FOV is the vertical field of view in radians.
	FOV float64
	// OrbitSpeed is a passive yaw drift in radians per second. Zero holds
	// the camera still.
	OrbitSpeed float64

	swing *swingAnim
}

// NewCamera creates a camera with defaults suited to the stock scene: a
// gentle orbit at a slight downward angle.
func NewCamera() *Camera {
	return &Camera{
		Distance:   22,
		Pitch:      0.25,
		FOV:        math.Pi / 4,
		OrbitSpeed: 0.07,
	}
}

// Eye returns the camera's world-space position.
func (c *Camera) Eye() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	dir := mgl64.Vec3{
		cp * math.Cos(c.Yaw),
		math.Sin(c.Pitch),
		cp * math.Sin(c.Yaw),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

// SwingTo animates yaw and pitch to the given angles over duration seconds.
func (c *Camera) SwingTo(yaw, pitch float64, duration float32, fn ease.TweenFunc) {
	c.swing = &swingAnim{
		tweenYaw:   gween.New(float32(c.Yaw), float32(yaw), duration, fn),
		tweenPitch: gween.New(float32(c.Pitch), float32(pitch), duration, fn),
	}
}

// Update advances the passive orbit and any active swing tween.
func (c *Camera) Update(dt float64) {
	c.Yaw += c.OrbitSpeed * dt

	if c.swing != nil {
		if !c.swing.doneYaw {
			val, done := c.swing.tweenYaw.Update(float32(dt))
			c.Yaw = float64(val)
			c.swing.doneYaw = done
		}
		if !c.swing.donePitch {
			val, done := c.swing.tweenPitch.Update(float32(dt))
			c.Pitch = float64(val)
			c.swing.donePitch = done
		}
		if c.swing.doneYaw && c.swing.donePitch {
			c.swing = nil
		}
	}
}

// viewProjection returns the view and projection matrices for the current
// camera state and viewport aspect ratio.
func (c *Camera) viewProjection(width, height int) (view, proj mgl64.Mat4) {
	aspect := float64(width) / float64(height)
	view = mgl64.LookAtV(c.Eye(), c.Target, yAxis)
	proj = mgl64.Perspective(c.FOV, aspect, 0.1, 500)
	return view, proj
}

// --- Billboard renderer ---

// billboard is one projected sprite awaiting draw.
type billboard struct {
	x, y  float64 // screen-space center
	size  float64 // screen-space diameter in pixels
	depth float64 // eye-space distance, for painter sorting and picking
	clr   Color
	cat   Category
	index int
}

// BillboardRenderer is the reference Renderer: it projects instances to
// screen space and draws each as a scaled, tinted quad, sorted far to near.
// It also answers screen-space picking queries against the interactive
// categories, using the sprites submitted for the most recent frame.
type BillboardRenderer struct {
	Camera *Camera
	// ClearColor fills the screen before sprites are drawn.
	ClearColor Color
	// MinSpriteSize keeps distant particles visible; projected sprites
	// smaller than this many pixels are drawn at this size.
	MinSpriteSize float64

	width, height int
	view, proj    mgl64.Mat4
	focal         float64
	sprites       []billboard
}

// NewBillboardRenderer creates a renderer drawing through the given camera
// into a viewport of the given pixel size.
func NewBillboardRenderer(cam *Camera, width, height int) *BillboardRenderer {
	r := &BillboardRenderer{
		Camera:        cam,
		ClearColor:    Color{0.02, 0.03, 0.08, 1},
		MinSpriteSize: 1.5,
		sprites:       make([]billboard, 0, 4096),
	}
	r.SetViewport(width, height)
	return r
}

// SetViewport updates the renderer's pixel dimensions. Called from the game
// loop's Layout.
func (r *BillboardRenderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

// BeginFrame clears the sprite list and caches the frame's matrices.
// Call once per frame before the scene composes.
func (r *BillboardRenderer) BeginFrame() {
	r.sprites = r.sprites[:0]
	r.view, r.proj = r.Camera.viewProjection(r.width, r.height)
	r.focal = float64(r.height) / (2 * math.Tan(r.Camera.FOV/2))
}

// Submit projects a category's instances into the sprite list.
// Implements Renderer.
func (r *BillboardRenderer) Submit(cat Category, instances []Instance) {
	for i := range instances {
		inst := &instances[i]

		p := inst.Position
		clip := r.proj.Mul4(r.view).Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})
		w := clip.W()
		if w <= 0.1 {
			continue // behind or on the near plane
		}

		ndcX := clip.X() / w
		ndcY := clip.Y() / w
		if ndcX < -1.2 || ndcX > 1.2 || ndcY < -1.2 || ndcY > 1.2 {
			continue
		}

		size := inst.Scale * r.focal / w
		if size < r.MinSpriteSize {
			size = r.MinSpriteSize
		}

		r.sprites = append(r.sprites, billboard{
			x:     (ndcX + 1) * 0.5 * float64(r.width),
			y:     (1 - ndcY) * 0.5 * float64(r.height),
			size:  size,
			depth: w,
			clr:   inst.Color,
			cat:   cat,
			index: i,
		})
	}
}

// Draw fills the screen with ClearColor and paints the submitted sprites far
// to near.
func (r *BillboardRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.ClearColor.toRGBA())

	slices.SortFunc(r.sprites, func(a, b billboard) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		default:
			return 0
		}
	})

	var opts ebiten.DrawImageOptions
	for i := range r.sprites {
		sp := &r.sprites[i]
		opts.GeoM.Reset()
		opts.GeoM.Scale(sp.size, sp.size)
		opts.GeoM.Translate(sp.x-sp.size/2, sp.y-sp.size/2)
		opts.ColorScale.Reset()
		opts.ColorScale.Scale(
			float32(sp.clr.R), float32(sp.clr.G), float32(sp.clr.B), float32(sp.clr.A))
		screen.DrawImage(WhitePixel, &opts)
	}
}

// pickPadding widens ornament hit areas by this many pixels so small distant
// ornaments remain clickable.
const pickPadding = 3.0

// Pick returns the nearest interactive ornament under the screen-space point,
// testing against the most recently submitted frame.
func (r *BillboardRenderer) Pick(x, y float64) (OrnamentID, bool) {
	var best OrnamentID
	bestDepth := math.Inf(1)
	found := false

	for i := range r.sprites {
		sp := &r.sprites[i]
		if sp.cat != CategoryGoldOrnament && sp.cat != CategoryRedOrnament {
			continue
		}
		radius := sp.size/2 + pickPadding
		dx, dy := x-sp.x, y-sp.y
		if dx*dx+dy*dy > radius*radius {
			continue
		}
		if sp.depth < bestDepth {
			bestDepth = sp.depth
			best = OrnamentID{Category: sp.cat, Index: sp.index}
			found = true
		}
	}
	return best, found
}
