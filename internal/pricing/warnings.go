package pricing

// WarningCode discriminates advisory conditions attached to a successful
// breakdown. Warnings require a user decision or acknowledgement; they are
// never errors and never silently resolved.
type WarningCode string

const (
	// WarnGrainMatchInfeasible: grain matching was requested but the
	// adjoining legs cannot be cut with continuous grain from one slab.
	// The surcharge is withheld; the caller decides how to proceed.
	WarnGrainMatchInfeasible WarningCode = "grain_match_infeasible"

	// WarnJoinPlacement: oversize segmentation required a compromise
	// against ideal join symmetry.
	WarnJoinPlacement WarningCode = "join_placement"

	// WarnNoMaterial: no material is assigned, so the breakdown excludes
	// the material component. Incomplete configuration, not a free piece.
	WarnNoMaterial WarningCode = "no_material"
)

// Warning is a structured advisory message.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
