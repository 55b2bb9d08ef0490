package model

import "github.com/stitchnet/stitchd/domain/dag/model/externalapi"

// BlockBuilder runs the block insertion pipeline: id allocation,
// classification, hashing, storage, tip maintenance and selected-parent
// recomputation. Each call is atomic from the caller's point of view.
type BlockBuilder interface {
	// BuildBlock creates a new block referencing the given parents, which
	// must all exist. An empty parent list is a contract violation and
	// panics.
	BuildBlock(parents []externalapi.DomainBlockID) (externalapi.DomainBlockID, error)
}
