package spruce

import (
	"fmt"
	"os"
	"time"
)

// Renderer consumes the per-frame instance buffers. The scene calls Submit
// once per category per frame; the buffers are fully overwritten before each
// call, never read mid-update.
type Renderer interface {
	Submit(category Category, instances []Instance)
}

// Per-category motion constants. Needles drift widely while scattered;
// lights carry a smaller, faster bob with an earlier cutoff so the string
// settles before the foliage; ornaments drift moderately and keep a
// perpetual idle spin.
const (
	needleFloatAmplitude = 0.5
	needleFloatFrequency = 0.5
	needleFloatCutoff    = 0.95

	ornamentFloatAmplitude = 0.3
	ornamentFloatFrequency = 0.5
	ornamentFloatCutoff    = 0.95
	ornamentSpinRate       = 0.6

	lightBobAmplitude = 0.05
	lightBobFrequency = 1.7
	lightBobCutoff    = 0.9
	lightBlinkRate    = 3.0
)

// Scene owns the four particle sets, the formation input, and the frame
// clock. All state is updated exactly once per frame by Update; Compose then
// publishes instance buffers to the renderer. Single-threaded by design.
type Scene struct {
	sets [4]*ParticleSet

	formation Formation
	elapsed   float64

	// assembleAt is the clock value at which the scene auto-switches to the
	// tree formation. Negative when no switch is pending. Polled in Update,
	// same as pulse expiry; no timer involved.
	assembleAt float64

	renderer Renderer
	store    EntityStore

	debug bool
}

// NewScene builds the four particle sets from the given config. The scene
// starts scattered and, if cfg.AssembleDelay is non-negative, assembles
// itself that many seconds in.
func NewScene(cfg SceneConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}

	s := &Scene{
		formation:  FormationScattered,
		assembleAt: cfg.AssembleDelay,
	}

	s.sets[CategoryNeedle] = NewParticleSet(SetConfig{
		Category:       CategoryNeedle,
		Count:          cfg.Needles.Count,
		ScatterRadius:  cfg.ScatterRadius,
		TreeHeight:     cfg.TreeHeight,
		TreeBaseRadius: cfg.TreeBaseRadius,
		BaseScale:      cfg.Needles.BaseScale,
		Color:          cfg.Needles.Color,
		FloatAmplitude: needleFloatAmplitude,
		FloatFrequency: needleFloatFrequency,
		FloatCutoff:    needleFloatCutoff,
	})
	s.sets[CategoryGoldOrnament] = NewParticleSet(ornamentSetConfig(CategoryGoldOrnament, cfg, cfg.Gold))
	s.sets[CategoryRedOrnament] = NewParticleSet(ornamentSetConfig(CategoryRedOrnament, cfg, cfg.Red))
	s.sets[CategoryLight] = NewParticleSet(SetConfig{
		Category:       CategoryLight,
		Count:          cfg.Lights.Count,
		ScatterRadius:  cfg.ScatterRadius,
		TreeHeight:     cfg.TreeHeight,
		TreeBaseRadius: cfg.TreeBaseRadius,
		BaseScale:      cfg.Lights.BaseScale,
		Color:          cfg.Lights.Color,
		FloatAmplitude: lightBobAmplitude,
		FloatFrequency: lightBobFrequency,
		FloatCutoff:    lightBobCutoff,
		BlinkRate:      lightBlinkRate,
	})

	return s, nil
}

// ornamentSetConfig shares the cone/sphere geometry with the other sets but
// slightly shrinks the scatter radius so ornaments never drift outside the
// needle cloud.
func ornamentSetConfig(cat Category, cfg SceneConfig, layer LayerConfig) SetConfig {
	return SetConfig{
		Category:       cat,
		Count:          layer.Count,
		ScatterRadius:  cfg.ScatterRadius * 0.9,
		TreeHeight:     cfg.TreeHeight,
		TreeBaseRadius: cfg.TreeBaseRadius,
		BaseScale:      layer.BaseScale,
		Color:          layer.Color,
		FloatAmplitude: ornamentFloatAmplitude,
		FloatFrequency: ornamentFloatFrequency,
		FloatCutoff:    ornamentFloatCutoff,
		SpinRate:       ornamentSpinRate,
		Interactive:    true,
	}
}

// Set returns the particle set for the given category.
func (s *Scene) Set(c Category) *ParticleSet {
	if int(c) >= len(s.sets) {
		panic("spruce: invalid category value")
	}
	return s.sets[c]
}

// Needles returns the needle set.
func (s *Scene) Needles() *ParticleSet { return s.sets[CategoryNeedle] }

// GoldOrnaments returns the gold ornament set.
func (s *Scene) GoldOrnaments() *ParticleSet { return s.sets[CategoryGoldOrnament] }

// RedOrnaments returns the red ornament set.
func (s *Scene) RedOrnaments() *ParticleSet { return s.sets[CategoryRedOrnament] }

// Lights returns the light set.
func (s *Scene) Lights() *ParticleSet { return s.sets[CategoryLight] }

// Formation returns the current target formation.
func (s *Scene) Formation() Formation {
	return s.formation
}

// SetFormation changes the target formation all sets damp toward. An explicit
// formation change cancels any pending startup auto-assemble. Panics on an
// unrecognized value.
func (s *Scene) SetFormation(f Formation) {
	f.target() // validate
	s.formation = f
	s.assembleAt = -1
}

// ToggleFormation flips between the two formations.
func (s *Scene) ToggleFormation() {
	if s.formation == FormationTree {
		s.SetFormation(FormationScattered)
	} else {
		s.SetFormation(FormationTree)
	}
}

// Elapsed returns total scene time in seconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// SetRenderer installs the renderer Compose publishes to. While the renderer
// is nil (startup), Compose skips the frame without error.
func (s *Scene) SetRenderer(r Renderer) {
	s.renderer = r
}

// SetEntityStore sets the optional ECS bridge for interaction events.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetChime installs the chime callback on every interactive set.
func (s *Scene) SetChime(fn ChimeFunc) {
	for _, set := range s.sets {
		if set.interaction != nil {
			set.interaction.SetChime(fn)
		}
	}
}

// SetDebugMode enables per-frame compose stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances the scene by dt seconds: the clock, the pending
// auto-assemble, every set's damped progress, and interaction smoothing.
// Negative dt is ignored. A late frame simply arrives with a larger dt; the
// damping is time-based, so the trajectory is unaffected.
func (s *Scene) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt

	if s.assembleAt >= 0 && s.elapsed >= s.assembleAt {
		s.formation = FormationTree
		s.assembleAt = -1
	}

	for _, set := range s.sets {
		set.Advance(s.formation, dt)
		if set.interaction != nil {
			set.interaction.update(dt)
		}
	}
}

// Compose publishes every set's instance buffer to the renderer. If no
// renderer is installed yet this is a silent no-op; that is the normal
// startup race, not a fault.
func (s *Scene) Compose() {
	if s.renderer == nil {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	total := 0
	for _, set := range s.sets {
		instances := set.Compose(s.elapsed)
		s.renderer.Submit(set.Category(), instances)
		total += len(instances)
	}

	if s.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[spruce] compose: %v | instances: %d | progress: %.3f\n",
			time.Since(t0), total, s.sets[CategoryNeedle].progress)
	}
}

// --- Interaction dispatch ---

// interactionFor returns the interaction state for an ornament id, panicking
// when the category carries none. Delivering pointer events to a
// non-interactive category is a caller bug.
func (s *Scene) interactionFor(id OrnamentID) *InteractionState {
	st := s.Set(id.Category).interaction
	if st == nil {
		panic(fmt.Sprintf("spruce: category %s is not interactive", id.Category))
	}
	return st
}

// HoverEnter delivers a pointer-enter event to an ornament. (x, y) is the
// screen-space pointer position, forwarded to the ECS bridge.
func (s *Scene) HoverEnter(id OrnamentID, x, y float64) {
	s.interactionFor(id).HoverEnter(id.Index)
	s.emit(EventHoverEnter, id, x, y)
}

// HoverExit delivers a pointer-leave event to an ornament.
func (s *Scene) HoverExit(id OrnamentID, x, y float64) {
	s.interactionFor(id).HoverExit(id.Index)
	s.emit(EventHoverLeave, id, x, y)
}

// Activate delivers a click/tap to an ornament.
func (s *Scene) Activate(id OrnamentID, x, y float64) {
	s.interactionFor(id).Activate(id.Index)
	s.emit(EventActivate, id, x, y)
}

func (s *Scene) emit(typ EventType, id OrnamentID, x, y float64) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(InteractionEvent{Type: typ, Ornament: id, X: x, Y: y})
}
