package physics

// Tuning values reproduce the feel of the game; they are fixed and have no
// independent physical meaning.
const (
	Restitution        = 0.5 // 1 = elastic collision, <1 inelastic collision
	LateralFriction    = 1.5
	RotationalFriction = 7.5

	// FrictionImpulseScale turns LateralFriction into the Coulomb
	// coefficient used at contacts.
	FrictionImpulseScale = 0.1

	// AlignmentGain is how hard a moving body turns its heading toward its
	// direction of travel, in 1/s^2 per radian of misalignment.
	AlignmentGain = 30.0
	// MinAlignmentSpeed below which a body keeps its heading.
	MinAlignmentSpeed = 1e-3

	DefaultThrust = 1.0
)
