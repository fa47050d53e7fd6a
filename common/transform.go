// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rigid pose component: a translation, a rotation quaternion, and a
// per-axis scale. Rotation is expected to be unit-length on well-formed input; code
// producing transforms (blend jobs, interpolation helpers) always writes a normalized
// rotation, but nothing re-normalizes inputs on the way in.
//
// The zero value is NOT a usable pose (its scale is zero). Start from
// IdentityTransform or NewTransform instead.
type Transform struct {
	// Translation is the position component in parent space.
	Translation mgl32.Vec3
	// Rotation is the orientation component as a unit quaternion.
	Rotation mgl32.Quat
	// Scale is the per-axis scale component, typically non-negative.
	Scale mgl32.Vec3
}

// IdentityTransform returns the canonical identity pose: zero translation, identity
// rotation, and a scale of (1, 1, 1). The values are exact, so an identity output can
// be compared bit-for-bit.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// NewTransform creates a Transform from its three components.
//
// Parameters:
//   - translation: the position component
//   - rotation: the orientation component (should be unit-length)
//   - scale: the per-axis scale component
//
// Returns:
//   - Transform: the assembled transform
func NewTransform(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    rotation,
		Scale:       scale,
	}
}

// Lerp interpolates between two transforms by amount in [0, 1]. Translation and scale
// interpolate linearly; rotation uses normalized linear interpolation, which stays on
// the unit sphere and is adequate for the small angular deltas typical of per-frame
// animation steps.
//
// Parameters:
//   - to: the target transform
//   - amount: the interpolation factor, 0 returning the receiver and 1 returning to
//
// Returns:
//   - Transform: the interpolated transform
func (t Transform) Lerp(to Transform, amount float32) Transform {
	return Transform{
		Translation: t.Translation.Add(to.Translation.Sub(t.Translation).Mul(amount)),
		Rotation:    mgl32.QuatNlerp(t.Rotation, to.Rotation, amount),
		Scale:       t.Scale.Add(to.Scale.Sub(t.Scale).Mul(amount)),
	}
}
