package spruce

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// phaseSpan is the range of per-particle phase offsets, [0, phaseSpan).
// Wide enough that periodic motion never visibly repeats across a set.
const phaseSpan = 100.0

// SetConfig controls how a ParticleSet generates its poses and how the
// composer animates it. Counts and poses are fixed at creation; nothing in
// the config regenerates particles later.
type SetConfig struct {
	// Category tags the set. Interaction state is attached only when
	// Interactive is true (ornament categories).
	Category Category
	// Count is the fixed number of particles in the set.
	Count int
	// ScatterRadius is the radius of the sphere the scattered poses fill.
	ScatterRadius float64
	// TreeHeight and TreeBaseRadius describe the cone the tree poses lie on.
	TreeHeight     float64
	TreeBaseRadius float64
	// BaseScale is the range each particle's intrinsic scale is drawn from.
	// The cone scale hint (shrink toward the apex) is baked in at creation.
	BaseScale Range
	// Color is the base tint for every particle in the set.
	Color Color
	// FloatAmplitude and FloatFrequency drive the pre-assembly floating
	// drift. The drift fades with (1-progress) and is suppressed entirely
	// once progress reaches FloatCutoff.
	FloatAmplitude float64
	FloatFrequency float64
	FloatCutoff    float64
	// BlinkRate, when positive, drives the light twinkle
	// sin(elapsed*BlinkRate + phase). Zero disables blinking.
	BlinkRate float64
	// SpinRate, when positive, applies a perpetual idle spin around the
	// vertical axis (ornaments). Unlike the floating tumble it never
	// settles, even at full assembly.
	SpinRate float64
	// Interactive attaches hover/click state to the set.
	Interactive bool
}

// ParticleSet is an ordered, fixed-size collection of particles sharing one
// damped transition progress scalar.
//
// Per-particle attributes are stored in parallel slices rather than a slice
// of structs: the composer walks every attribute of every particle each
// frame, and thousands of particles benefit from the denser layout.
// All pose data is immutable after NewParticleSet; only progress and the
// optional interaction state mutate.
type ParticleSet struct {
	config SetConfig

	scatter   []mgl64.Vec3 // scattered-formation pose, sphere-sampled
	tree      []mgl64.Vec3 // tree-formation pose, cone-sampled
	basis     []mgl64.Quat // fixed orientation derived from the cone normal
	baseScale []float64    // intrinsic scale, apex shrink baked in
	phase     []float64    // temporal phase offset in [0, phaseSpan)

	progress float64

	interaction *InteractionState

	// Output buffer reused every frame; no per-particle allocation in
	// steady state.
	instances []Instance
}

// NewParticleSet generates a set's poses and intrinsic attributes. This is
// the only moment randomness enters the set; every later frame is a pure
// function of progress, elapsed time, and interaction flags.
func NewParticleSet(cfg SetConfig) *ParticleSet {
	if cfg.Count <= 0 {
		panic("spruce: particle set count must be positive")
	}

	s := &ParticleSet{
		config:    cfg,
		scatter:   make([]mgl64.Vec3, cfg.Count),
		tree:      make([]mgl64.Vec3, cfg.Count),
		basis:     make([]mgl64.Quat, cfg.Count),
		baseScale: make([]float64, cfg.Count),
		phase:     make([]float64, cfg.Count),
		instances: make([]Instance, cfg.Count),
	}

	for i := 0; i < cfg.Count; i++ {
		s.scatter[i] = ScatterPoint(cfg.ScatterRadius)

		cone := ConePoint(cfg.TreeHeight, cfg.TreeBaseRadius)
		s.tree[i] = cone.Position
		s.basis[i] = orientationFromNormal(cone.Normal)
		s.baseScale[i] = cfg.BaseScale.Random() * cone.ScaleHint
		s.phase[i] = rand.Float64() * phaseSpan
	}

	if cfg.Interactive {
		s.interaction = newInteractionState(cfg.Count)
	}

	return s
}

// Count returns the fixed number of particles in the set.
func (s *ParticleSet) Count() int {
	return len(s.scatter)
}

// Category returns the set's category tag.
func (s *ParticleSet) Category() Category {
	return s.config.Category
}

// Config returns a pointer to the set's config for live tuning of motion
// parameters. Pose-generation fields (Count, radii) have no effect after
// creation.
func (s *ParticleSet) Config() *SetConfig {
	return &s.config
}

// Progress returns the set's current transition progress in [0, 1].
func (s *ParticleSet) Progress() float64 {
	return s.progress
}

// ScatterPose returns particle i's scattered-formation pose.
func (s *ParticleSet) ScatterPose(i int) mgl64.Vec3 {
	return s.scatter[i]
}

// TreePose returns particle i's tree-formation pose.
func (s *ParticleSet) TreePose(i int) mgl64.Vec3 {
	return s.tree[i]
}

// Interaction returns the set's interaction state, or nil for
// non-interactive sets.
func (s *ParticleSet) Interaction() *InteractionState {
	return s.interaction
}

// Instances returns the set's output buffer as written by the most recent
// Compose call. The returned slice MUST NOT be mutated.
func (s *ParticleSet) Instances() []Instance {
	return s.instances
}
