package externalapi

// DomainBlockID is the monotonically-increasing identifier a block receives
// when it is inserted into the DAG. Genesis always has id 0.
type DomainBlockID uint64

// BlockColor is the GHOSTDAG-style classification a block receives upon
// insertion, relative to the selected parent at that moment.
type BlockColor byte

// Block color constants.
const (
	ColorBlue BlockColor = iota
	ColorRed
)

func (color BlockColor) String() string {
	if color == ColorBlue {
		return "BLUE"
	}
	return "RED"
}

// DomainBlock represents a block in the DAG. A DomainBlock is immutable once
// it has been inserted; it is never deleted.
type DomainBlock struct {
	ID      DomainBlockID
	Parents []DomainBlockID
	Color   BlockColor
	Hash    *DomainHash
}

// Clone returns a clone of DomainBlock
func (block *DomainBlock) Clone() *DomainBlock {
	parentsClone := make([]DomainBlockID, len(block.Parents))
	copy(parentsClone, block.Parents)

	return &DomainBlock{
		ID:      block.ID,
		Parents: parentsClone,
		Color:   block.Color,
		Hash:    block.Hash,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = &DomainBlock{0, []DomainBlockID{}, ColorBlue, &DomainHash{}}

// Equal returns whether block equals to other
func (block *DomainBlock) Equal(other *DomainBlock) bool {
	if block == nil || other == nil {
		return block == other
	}

	if block.ID != other.ID {
		return false
	}

	if len(block.Parents) != len(other.Parents) {
		return false
	}
	for i, parent := range block.Parents {
		if parent != other.Parents[i] {
			return false
		}
	}

	if block.Color != other.Color {
		return false
	}

	return block.Hash.Equal(other.Hash)
}
