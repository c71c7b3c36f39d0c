package particle

import "errors"

// Sentinel errors for particle construction and classification. All are
// matched with errors.Is; none of them is wrapped when returned directly.
var (
	// ErrUnknownKind indicates a Kind outside the closed category set.
	ErrUnknownKind = errors.New("particle: unknown particle kind")

	// ErrBadCharge indicates a NaN or infinite electric charge.
	ErrBadCharge = errors.New("particle: charge must be finite")

	// ErrBadGoodTag indicates a good-tag value other than 0 or 1.
	ErrBadGoodTag = errors.New("particle: good tag value must be 0 or 1")

	// ErrMissingCuts indicates that a CutSet has no entry for the particle's kind.
	ErrMissingCuts = errors.New("particle: no kinematic cuts for particle kind")

	// ErrBadCutRange indicates a cut record whose pt_max does not exceed pt_min.
	ErrBadCutRange = errors.New("particle: pt_max must be greater than pt_min")

	// ErrNoContributions indicates NewMET was called with an empty slice.
	ErrNoContributions = errors.New("particle: MET needs at least one contribution")
)
