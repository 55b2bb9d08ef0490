package model

import "github.com/stitchnet/stitchd/domain/dag/model/externalapi"

// BlockStore represents a store of DomainBlocks. It also owns the monotonic
// id counter from which every block id, genesis included, is allocated.
type BlockStore interface {
	// AllocateID returns the next free block id and advances the counter.
	AllocateID() externalapi.DomainBlockID

	// Add inserts the given block into the store. The block is immutable
	// from this point on.
	Add(block *externalapi.DomainBlock)

	// Block returns the block with the given id, or a NotFound error if no
	// such block exists.
	Block(blockID externalapi.DomainBlockID) (*externalapi.DomainBlock, error)

	// HasBlock returns whether a block with the given id exists.
	HasBlock(blockID externalapi.DomainBlockID) bool

	// Blocks returns all stored blocks in ascending id order.
	Blocks() []*externalapi.DomainBlock

	// Count returns the amount of stored blocks.
	Count() uint64
}
