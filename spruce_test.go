package spruce

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3Near(t *testing.T, name string, got, want mgl64.Vec3, tol float64) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("%s = %v, want %v (within %g)", name, got, want, tol)
	}
}

// --- lerp ---

func TestLerpVec3Endpoints(t *testing.T) {
	a := mgl64.Vec3{0.1, -2.7, 3.3}
	b := mgl64.Vec3{9.9, 4.2, -1.1}

	if got := lerpVec3(a, b, 0); got != a {
		t.Errorf("lerp at t=0 = %v, want exactly %v", got, a)
	}
	if got := lerpVec3(a, b, 1); got != b {
		t.Errorf("lerp at t=1 = %v, want exactly %v", got, b)
	}

	mid := lerpVec3(a, b, 0.5)
	assertVec3Near(t, "midpoint", mid, mgl64.Vec3{5.0, 0.75, 1.1}, epsilon)
}

func TestLerpScalar(t *testing.T) {
	assertNear(t, "lerp(2,6,0.25)", lerp(2, 6, 0.25), 3)
	assertNear(t, "lerp(2,6,0)", lerp(2, 6, 0), 2)
	assertNear(t, "lerp(2,6,1)", lerp(2, 6, 1), 6)
}

// --- Color ---

func TestColorScaled(t *testing.T) {
	c := Color{0.5, 0.4, 0.2, 0.8}.Scaled(2)
	assertNear(t, "r", c.R, 1.0)
	assertNear(t, "g", c.G, 0.8)
	assertNear(t, "b", c.B, 0.4)
	assertNear(t, "a (unchanged)", c.A, 0.8)
}

// --- Range ---

func TestRangeRandom(t *testing.T) {
	r := Range{2, 5}
	for i := 0; i < 1000; i++ {
		v := r.Random()
		if v < 2 || v > 5 {
			t.Fatalf("Random() = %v, outside [2, 5]", v)
		}
	}
}

func TestRangeRandomDegenerate(t *testing.T) {
	r := Range{3, 3}
	if v := r.Random(); v != 3 {
		t.Errorf("degenerate Random() = %v, want 3", v)
	}
}

// --- Formation ---

func TestFormationString(t *testing.T) {
	if FormationScattered.String() != "scattered" {
		t.Errorf("scattered String = %q", FormationScattered.String())
	}
	if FormationTree.String() != "tree" {
		t.Errorf("tree String = %q", FormationTree.String())
	}
	if Formation(99).String() != "invalid" {
		t.Errorf("invalid String = %q", Formation(99).String())
	}
}

func TestFormationTarget(t *testing.T) {
	assertNear(t, "scattered target", FormationScattered.target(), 0)
	assertNear(t, "tree target", FormationTree.target(), 1)
}

func TestFormationTargetPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid formation")
		}
	}()
	Formation(99).target()
}

// --- Category ---

func TestCategoryString(t *testing.T) {
	cases := []struct {
		cat  Category
		want string
	}{
		{CategoryNeedle, "needle"},
		{CategoryGoldOrnament, "gold"},
		{CategoryRedOrnament, "red"},
		{CategoryLight, "light"},
		{Category(42), "invalid"},
	}
	for _, tc := range cases {
		if got := tc.cat.String(); got != tc.want {
			t.Errorf("Category(%d).String() = %q, want %q", tc.cat, got, tc.want)
		}
	}
}
