package spruce

import (
	"math/rand/v2"
	"testing"
)

// setupBenchScene creates a scene with n needles plus the stock ornament and
// light counts, wired to a billboard renderer.
func setupBenchScene(b *testing.B, n int) (*Scene, *BillboardRenderer) {
	b.Helper()
	cfg := DefaultConfig()
	cfg.AssembleDelay = -1
	cfg.Needles.Count = n
	scene, err := NewScene(cfg)
	if err != nil {
		b.Fatal(err)
	}
	r := NewBillboardRenderer(NewCamera(), 1280, 720)
	scene.SetRenderer(r)
	return scene, r
}

// --- Full frame (update + compose + project) ---

func BenchmarkFrame_10000Needles_Transitioning(b *testing.B) {
	scene, r := setupBenchScene(b, 10000)
	scene.SetFormation(FormationTree)

	b.ReportAllocs()
	for b.Loop() {
		scene.Update(1.0 / 60.0)
		r.BeginFrame()
		scene.Compose()
	}
}

func BenchmarkFrame_10000Needles_Assembled(b *testing.B) {
	scene, r := setupBenchScene(b, 10000)
	scene.SetFormation(FormationTree)
	for _, cat := range []Category{CategoryNeedle, CategoryGoldOrnament, CategoryRedOrnament, CategoryLight} {
		scene.Set(cat).SetProgress(1)
	}

	b.ReportAllocs()
	for b.Loop() {
		scene.Update(1.0 / 60.0)
		r.BeginFrame()
		scene.Compose()
	}
}

func BenchmarkFrame_10000Needles_Scattered(b *testing.B) {
	scene, r := setupBenchScene(b, 10000)

	b.ReportAllocs()
	for b.Loop() {
		scene.Update(1.0 / 60.0)
		r.BeginFrame()
		scene.Compose()
	}
}

// --- Transition math ---

func BenchmarkAdvance_10000Steps(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		p := 0.0
		for i := 0; i < 10000; i++ {
			p = Advance(p, FormationTree, 1.0/60.0)
		}
	}
}

// --- Picking ---

func BenchmarkPick_1000Ornaments(b *testing.B) {
	cfg := DefaultConfig()
	cfg.AssembleDelay = -1
	cfg.Gold.Count = 1000
	scene, err := NewScene(cfg)
	if err != nil {
		b.Fatal(err)
	}
	r := NewBillboardRenderer(NewCamera(), 1280, 720)
	scene.SetRenderer(r)
	scene.GoldOrnaments().SetProgress(1)

	r.BeginFrame()
	scene.Compose()

	b.ReportAllocs()
	for b.Loop() {
		r.Pick(float64(rand.IntN(1280)), float64(rand.IntN(720)))
	}
}

// --- Construction ---

func BenchmarkNewScene_Default(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := NewScene(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
