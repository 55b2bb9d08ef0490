package externalapi

// DAG is the external interface of the block DAG. All state behind it is
// mutated strictly serially by one logical caller.
type DAG interface {
	// CreateBlock inserts a new block referencing the given parents and
	// returns its id. The parent list must not be empty - an empty parent
	// list is a contract violation and panics. Genesis is constructed at
	// DAG creation and never goes through CreateBlock.
	CreateBlock(parents []DomainBlockID) (DomainBlockID, error)

	// StitchIfNeeded collapses the tip set into a single merge block if the
	// tip set has grown beyond the configured stitch threshold. Returns the
	// id of the merge block and whether stitching took place.
	StitchIfNeeded() (DomainBlockID, bool, error)

	// Block returns the block with the given id, or a NotFound error if no
	// such block exists.
	Block(blockID DomainBlockID) (*DomainBlock, error)

	// Blocks returns all blocks in the DAG, in ascending id order.
	Blocks() []*DomainBlock

	// BlockCount returns the amount of blocks in the DAG, genesis included.
	BlockCount() uint64

	// Tips returns the current tip set in ascending id order.
	Tips() []DomainBlockID

	// SelectedParent returns the current selected parent. It always refers
	// to a Blue block.
	SelectedParent() DomainBlockID

	// PastSize returns the cardinality of the past set of the given block,
	// the block itself included.
	PastSize(blockID DomainBlockID) (uint64, error)

	// AnticoneSize returns the directional anticone approximation between
	// the two given blocks.
	AnticoneSize(blockID, referenceID DomainBlockID) (uint64, error)

	// DigestSequence returns the hashes of all blocks, in ascending id
	// order, concatenated into one buffer of 32 bytes per block.
	DigestSequence() []byte
}
