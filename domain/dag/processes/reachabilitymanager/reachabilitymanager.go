package reachabilitymanager

import (
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dag/utils/idset"
)

// reachabilityManager resolves reachability queries by rescanning the full
// block graph on every call. There are no cached indices, so query cost is
// O(blocks x parent-edges).
type reachabilityManager struct {
	blockStore model.BlockStore
}

// New instantiates a new ReachabilityManager
func New(blockStore model.BlockStore) model.ReachabilityManager {
	return &reachabilityManager{
		blockStore: blockStore,
	}
}

// FutureSet returns the set of ids reachable from blockID by following child
// edges transitively, blockID itself included. Children are discovered by
// scanning every stored block for a parent reference, so blockID itself does
// not have to exist in the store. A block that was not yet linked therefore
// has a future set of exactly itself - classification depends on that.
func (rm *reachabilityManager) FutureSet(blockID externalapi.DomainBlockID) idset.IDSet {
	future := idset.New()
	future.Add(blockID)
	queue := []externalapi.DomainBlockID{blockID}

	blocks := rm.blockStore.Blocks()
	for len(queue) > 0 {
		var current externalapi.DomainBlockID
		current, queue = queue[0], queue[1:]
		for _, candidate := range blocks {
			if future.Contains(candidate.ID) {
				continue
			}
			for _, parent := range candidate.Parents {
				if parent == current {
					future.Add(candidate.ID)
					queue = append(queue, candidate.ID)
					break
				}
			}
		}
	}
	return future
}

// PastSet returns the set of ids reachable from blockID by following parent
// edges transitively, blockID itself included.
func (rm *reachabilityManager) PastSet(blockID externalapi.DomainBlockID) (idset.IDSet, error) {
	past := idset.New()
	past.Add(blockID)
	queue := []externalapi.DomainBlockID{blockID}

	for len(queue) > 0 {
		var current externalapi.DomainBlockID
		current, queue = queue[0], queue[1:]
		block, err := rm.blockStore.Block(current)
		if err != nil {
			return nil, err
		}
		for _, parent := range block.Parents {
			if !past.Contains(parent) {
				past.Add(parent)
				queue = append(queue, parent)
			}
		}
	}
	return past, nil
}

// AnticoneSize returns max(0, |future(blockID) \ future(referenceID)| - 1).
// This is a directional approximation of the true anticone - it deliberately
// ignores the past-side difference, and must not be "corrected" into a
// symmetric test.
func (rm *reachabilityManager) AnticoneSize(blockID, referenceID externalapi.DomainBlockID) uint64 {
	diff := rm.FutureSet(blockID).Subtract(rm.FutureSet(referenceID))
	if len(diff) == 0 {
		return 0
	}
	return uint64(len(diff)) - 1
}
