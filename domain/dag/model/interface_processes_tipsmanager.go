package model

import "github.com/stitchnet/stitchd/domain/dag/model/externalapi"

// TipsManager maintains the current tip set: the blocks that have no recorded
// child as of the latest snapshot. The set is mutated incrementally and is
// never recomputed from scratch.
type TipsManager interface {
	// AddTip inserts the new block id into the tip set and removes the
	// given parents from it. The set is never empty after a call.
	AddTip(blockID externalapi.DomainBlockID, parents []externalapi.DomainBlockID)

	// Tips returns the current tip set in ascending id order.
	Tips() []externalapi.DomainBlockID

	// TipCount returns the cardinality of the tip set.
	TipCount() uint64
}
