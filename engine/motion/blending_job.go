package motion

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/motion-go/common"
)

// Layer is one weighted input to a BlendingJob.
//
// Note the asymmetry between the two fields: Transform must be non-nil for the
// owning job to validate at all, even when Weight is zero or negative and the layer
// therefore contributes nothing numerically. A layer you want fully ignored must be
// removed from the slice, not just zero-weighted.
type Layer struct {
	// Transform is a non-owning reference to the layer's input pose. The referenced
	// memory must stay valid, and must not be mutated, for the duration of Run.
	Transform *common.Transform

	// Weight is the layer's blend weight. Only strictly positive weights contribute;
	// weights do not need to be normalized, as the blend renormalizes by the sum of
	// positive weights.
	Weight float32
}

// BlendingJob combines zero or more weighted transform layers into a single output
// transform. Translation blends direction and length separately: each layer
// contributes its weighted length and its weighted unit direction, and the output is
// the mean direction scaled by the mean length, so opposing displacements shorten
// the blend instead of collapsing it. Scale blends as a weighted arithmetic mean.
// Rotation blends as a weighted linear quaternion accumulation with shortest-path
// sign correction against the first contributing layer, normalized at the end — a
// cheap, order-independent approximation to spherical blending that is standard for
// the small angular differences between animation layers.
//
// The job owns none of the referenced data. All referenced memory is the caller's
// responsibility and must outlive the Run call; the caller must also ensure the
// output is not read, and layer transforms are not mutated, concurrently with Run.
// A job instance is reusable across frames and Run mutates nothing except *Output.
type BlendingJob struct {
	// Layers is the caller-owned sequence of weighted inputs. It may be empty or nil,
	// in which case Run writes the identity transform. Order affects nothing
	// semantically, only the iteration order of the accumulation arithmetic.
	Layers []Layer

	// Output is the required destination transform. Run writes the blended result
	// here and only here.
	Output *common.Transform
}

// Ensure BlendingJob implements the Job contract.
var _ Job = &BlendingJob{}

// Validate reports whether the job's references are structurally usable: the output
// must be non-nil and every layer in the slice must reference a transform. An empty
// layer slice is valid. Validate has no side effects and never touches the output.
//
// Returns:
//   - bool: true if Output is non-nil and no layer has a nil Transform
func (j *BlendingJob) Validate() bool {
	if j.Output == nil {
		return false
	}
	for i := range j.Layers {
		if j.Layers[i].Transform == nil {
			return false
		}
	}
	return true
}

// Run blends the layers into *Output. It revalidates first and returns false without
// touching the output if validation fails. Once validation holds the arithmetic
// cannot fail: non-positive weights are skipped, and the zero-weight-sum case
// (including zero layers) writes the exact identity transform.
//
// Returns:
//   - bool: true if the blend was written to the output, false on invalid references
func (j *BlendingJob) Run() bool {
	if !j.Validate() {
		return false
	}

	var (
		weightSum float32
		scale     mgl32.Vec3

		// Translation accumulates as a direction-length decomposition:
		// direction sums w-weighted unit vectors, length sums w-weighted
		// magnitudes. Blending the two separately keeps the blended
		// displacement's length a weighted mean of the input lengths.
		direction mgl32.Vec3
		length    float32

		// rotation accumulates w-scaled quaternions; reference is the first
		// contributing layer's rotation, the hemisphere test anchor for every
		// subsequent layer.
		rotation  mgl32.Quat
		reference mgl32.Quat
		seeded    bool
	)

	for i := range j.Layers {
		layer := &j.Layers[i]
		w := layer.Weight
		if w <= 0 {
			continue
		}
		weightSum += w

		l := layer.Transform.Translation.Len()
		length += w * l
		// A zero-length translation has no direction to contribute.
		if l != 0 {
			direction = direction.Add(layer.Transform.Translation.Mul(w / l))
		}
		scale = scale.Add(layer.Transform.Scale.Mul(w))

		q := layer.Transform.Rotation
		if !seeded {
			reference = q
			rotation = q.Scale(w)
			seeded = true
			continue
		}
		// q and -q are the same rotation; accumulate whichever is in the
		// reference hemisphere so the linear sum takes the short path.
		if q.Dot(reference) < 0 {
			q = q.Scale(-1)
		}
		rotation = rotation.Add(q.Scale(w))
	}

	if weightSum == 0 {
		*j.Output = common.IdentityTransform()
		return true
	}

	invSum := 1 / weightSum
	// direction/weightSum is the mean direction vector, length/weightSum the mean
	// displacement length; their product is the blended translation.
	j.Output.Translation = direction.Mul(length * invSum * invSum)
	j.Output.Scale = scale.Mul(invSum)

	// A degenerate accumulator cannot arise while weightSum > 0, but guard it anyway:
	// a zero-length quaternion normalizes to identity rather than NaN.
	if rotation.Len() == 0 {
		j.Output.Rotation = mgl32.QuatIdent()
	} else {
		j.Output.Rotation = rotation.Normalize()
	}

	return true
}
