// Package kinrow flattens ordered particle lists into feature rows: one
// labeled scalar per kinematic quantity, including every pairwise delta.
//
// Label strings are a contract. Downstream tabular consumers key off the
// exact labels, so the scheme follows the ROOT-style convention of the
// analyses this library feeds:
//
//	pT_{e}(GeV)  #eta_{e}  #phi_{e}  Energy_{e}(GeV)  Mass_{e}(GeV)
//	#Delta{R}_{emu}  #Delta{#eta}_{emu}  ...  #Delta{#vec{p}}_{emu}(GeV)
//
// Row preserves insertion order, and Kinematics emits labels in a fixed
// nested order (particles first-to-last, then for each particle its deltas
// against every later particle), so the same input list always produces the
// same label sequence.
//
// Particle display names must be unique within one call; this is a caller
// precondition, not validated here — a duplicate name silently overwrites
// the earlier value under the same label.
package kinrow
