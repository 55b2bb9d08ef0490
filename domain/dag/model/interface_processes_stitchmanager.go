package model

import "github.com/stitchnet/stitchd/domain/dag/model/externalapi"

// StitchManager implements the tip-count consolidation heuristic: once the
// tip set grows beyond the stitch threshold, it is collapsed into a single
// merge block referencing the whole snapshot. This is a network-health
// heuristic, not part of canonical consensus.
type StitchManager interface {
	// StitchIfNeeded checks the tip-set cardinality against the threshold
	// and, if exceeded, builds one merge block over the full tip set.
	// Returns the merge block id and whether stitching took place.
	StitchIfNeeded() (externalapi.DomainBlockID, bool, error)
}
