package blockstore

import (
	"github.com/pkg/errors"

	"github.com/stitchnet/stitchd/domain/dag/database"
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
)

// blockStore keeps every block record in memory, keyed by id, and owns the
// monotonic id counter. Blocks are never deleted, so insertion order doubles
// as ascending id order.
type blockStore struct {
	blocks map[externalapi.DomainBlockID]*externalapi.DomainBlock
	order  []externalapi.DomainBlockID
	nextID externalapi.DomainBlockID
}

// New instantiates a new BlockStore
func New() model.BlockStore {
	return &blockStore{
		blocks: make(map[externalapi.DomainBlockID]*externalapi.DomainBlock),
	}
}

// AllocateID returns the next free block id and advances the counter.
func (bs *blockStore) AllocateID() externalapi.DomainBlockID {
	id := bs.nextID
	bs.nextID++
	return id
}

// Add inserts the given block into the store.
func (bs *blockStore) Add(block *externalapi.DomainBlock) {
	if _, ok := bs.blocks[block.ID]; ok {
		// Ids are issued by this store, so a duplicate means the caller
		// broke the insertion contract.
		panic(errors.Errorf("block %d was added twice", block.ID))
	}
	bs.blocks[block.ID] = block
	bs.order = append(bs.order, block.ID)
}

// Block returns the block with the given id, or a NotFound error if no such
// block exists.
func (bs *blockStore) Block(blockID externalapi.DomainBlockID) (*externalapi.DomainBlock, error) {
	block, ok := bs.blocks[blockID]
	if !ok {
		return nil, errors.Wrapf(database.ErrNotFound, "block %d", blockID)
	}
	return block, nil
}

// HasBlock returns whether a block with the given id exists.
func (bs *blockStore) HasBlock(blockID externalapi.DomainBlockID) bool {
	_, ok := bs.blocks[blockID]
	return ok
}

// Blocks returns all stored blocks in ascending id order.
func (bs *blockStore) Blocks() []*externalapi.DomainBlock {
	blocks := make([]*externalapi.DomainBlock, 0, len(bs.order))
	for _, id := range bs.order {
		blocks = append(blocks, bs.blocks[id])
	}
	return blocks
}

// Count returns the amount of stored blocks.
func (bs *blockStore) Count() uint64 {
	return uint64(len(bs.blocks))
}
