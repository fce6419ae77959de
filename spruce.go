package spruce

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Scaled returns the color with R, G, and B multiplied by s. Alpha is unchanged.
func (c Color) Scaled(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Range is a general-purpose min/max range.
// Used by SetConfig for per-particle base scale sampling.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Formation is one of the two named configurations particles can be posed in.
type Formation uint8

const (
	// FormationScattered disperses particles into their sphere-sampled cloud poses.
	FormationScattered Formation = iota
	// FormationTree assembles particles onto their cone-sampled tree poses.
	FormationTree
)

// String returns the formation name for logs and test output.
func (f Formation) String() string {
	switch f {
	case FormationScattered:
		return "scattered"
	case FormationTree:
		return "tree"
	default:
		return "invalid"
	}
}

// target returns the progress value the formation damps toward.
// Panics on an unrecognized formation: a bad value is a caller bug and
// silently defaulting would mask it.
func (f Formation) target() float64 {
	switch f {
	case FormationScattered:
		return 0
	case FormationTree:
		return 1
	default:
		panic("spruce: invalid formation value")
	}
}

// Category identifies one of the fixed particle categories. Each category is
// backed by its own ParticleSet with its own damped progress scalar.
type Category uint8

const (
	CategoryNeedle       Category = iota // foliage billboards, bulk of the instance count
	CategoryGoldOrnament                 // interactive ornaments (hover/click)
	CategoryRedOrnament                  // interactive ornaments (hover/click)
	CategoryLight                        // blinking string lights
)

// String returns the category name for logs and test output.
func (c Category) String() string {
	switch c {
	case CategoryNeedle:
		return "needle"
	case CategoryGoldOrnament:
		return "gold"
	case CategoryRedOrnament:
		return "red"
	case CategoryLight:
		return "light"
	default:
		return "invalid"
	}
}

// Instance is one composed particle transform, written once per frame into a
// ParticleSet's output buffer and consumed directly by a renderer.
type Instance struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    float64
	Color    Color
}

// OrnamentID addresses a single interactive particle inside a scene.
// Only ornament categories carry interaction state.
type OrnamentID struct {
	Category Category
	Index    int
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventHoverEnter EventType = iota // pointer entered an ornament's hit area
	EventHoverLeave                  // pointer left an ornament's hit area
	EventActivate                    // ornament was clicked/tapped
)

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	Ornament OrnamentID
	// Screen-space pointer position at the time of the event.
	X, Y float64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// lerpVec3 linearly interpolates between a and b by t, component-wise.
// The weighted form a·(1-t) + b·t is used rather than a + (b-a)·t so that
// t=0 yields a exactly and t=1 yields b exactly, with no rounding residue.
func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	u := 1 - t
	return mgl64.Vec3{
		a[0]*u + b[0]*t,
		a[1]*u + b[1]*t,
		a[2]*u + b[2]*t,
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
