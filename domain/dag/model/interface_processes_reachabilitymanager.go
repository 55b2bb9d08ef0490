package model

import (
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dag/utils/idset"
)

// ReachabilityManager resolves reachability queries by traversing the entire
// current block graph on every call. There is no memoization - the cost of
// every query grows with the total block count, and callers that query in hot
// loops must budget for that.
type ReachabilityManager interface {
	// FutureSet returns the set of ids reachable from blockID by following
	// child edges transitively, blockID itself included. blockID does not
	// have to exist in the store: a block that was never linked has a
	// future set of itself alone.
	FutureSet(blockID externalapi.DomainBlockID) idset.IDSet

	// PastSet returns the set of ids reachable from blockID by following
	// parent edges transitively, blockID itself included.
	PastSet(blockID externalapi.DomainBlockID) (idset.IDSet, error)

	// AnticoneSize returns the directional anticone approximation
	// max(0, |future(blockID) \ future(referenceID)| - 1).
	AnticoneSize(blockID, referenceID externalapi.DomainBlockID) uint64
}
