package model

import "github.com/stitchnet/stitchd/domain/dag/model/externalapi"

// SelectedParentManager tracks the single chain-defining ancestor: the Blue
// tip with the largest past set.
type SelectedParentManager interface {
	// SelectedParent returns the current selected parent.
	SelectedParent() externalapi.DomainBlockID

	// Recompute re-evaluates the selected parent against the current tip
	// set. Ties on past-set size break to the smallest id. If no Blue tip
	// exists the selected parent is left unchanged.
	Recompute() error
}
