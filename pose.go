package spruce

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// ConePose is the result of sampling a point on the irregular cone surface:
// the position itself, the outward horizontal normal at that azimuth (used as
// an orientation hint for needles), and a scale hint that shrinks toward the
// apex.
type ConePose struct {
	Position  mgl64.Vec3
	Normal    mgl64.Vec3
	ScaleHint float64
}

// ScatterPoint draws a point uniformly distributed by volume inside a sphere
// of the given radius, centered on the origin.
//
// The radial distance uses cbrt(w) rather than w directly; sampling the radius
// linearly would cluster points near the center because shell volume grows
// with r².
func ScatterPoint(radius float64) mgl64.Vec3 {
	theta := 2 * math.Pi * rand.Float64()
	phi := math.Acos(2*rand.Float64() - 1)
	r := radius * math.Cbrt(rand.Float64())

	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		r * sinPhi * math.Cos(theta),
		r * math.Cos(phi),
		r * sinPhi * math.Sin(theta),
	}
}

// ConePoint draws a point on an irregular cone surface of the given height and
// base radius, centered vertically on the origin (apex at +height/2).
//
// The nominal radius tapers linearly with height and is then perturbed by a
// ±20% multiplicative jitter, so the silhouette reads as foliage rather than
// a lathed solid.
func ConePoint(height, baseRadius float64) ConePose {
	yNorm := rand.Float64() // [0, 1): 0 = base, 1 = apex
	y := (yNorm - 0.5) * height

	r := (1 - yNorm) * baseRadius
	r *= 0.8 + 0.4*rand.Float64()

	theta := 2 * math.Pi * rand.Float64()
	cos, sin := math.Cos(theta), math.Sin(theta)

	return ConePose{
		Position:  mgl64.Vec3{r * cos, y, r * sin},
		Normal:    mgl64.Vec3{cos, 0, sin},
		ScaleHint: 1 - yNorm*0.6,
	}
}

// needleTilt is the fixed upward pitch applied to needle orientations so they
// point outward and slightly up rather than lying flat.
const needleTilt = -0.35 // radians

// orientationFromNormal derives the fixed unit rotation for a particle from
// its cone-surface normal: yaw to face outward along the normal, then a small
// fixed tilt upward.
func orientationFromNormal(normal mgl64.Vec3) mgl64.Quat {
	yaw := math.Atan2(normal[2], normal[0])
	q := mgl64.QuatRotate(-yaw, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(needleTilt, mgl64.Vec3{0, 0, 1}))
	return q.Normalize()
}
