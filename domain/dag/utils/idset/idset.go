package idset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
)

// IDSet implements a basic unsorted set of block ids
type IDSet map[externalapi.DomainBlockID]struct{}

// New creates a new, empty IDSet
func New() IDSet {
	return IDSet{}
}

// FromSlice converts a slice of block ids into an unordered set
func FromSlice(ids ...externalapi.DomainBlockID) IDSet {
	set := New()
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

// Add adds a block id to this IDSet
func (is IDSet) Add(id externalapi.DomainBlockID) {
	is[id] = struct{}{}
}

// Remove removes a block id from this IDSet, if exists
// Does nothing if this set does not contain the block id
func (is IDSet) Remove(id externalapi.DomainBlockID) {
	delete(is, id)
}

// Contains returns true iff this set contains id
func (is IDSet) Contains(id externalapi.DomainBlockID) bool {
	_, ok := is[id]
	return ok
}

// Clone clones this id set
func (is IDSet) Clone() IDSet {
	clone := New()
	for id := range is {
		clone.Add(id)
	}
	return clone
}

// Subtract returns the difference between this IDSet and another IDSet
func (is IDSet) Subtract(other IDSet) IDSet {
	diff := New()
	for id := range is {
		if !other.Contains(id) {
			diff.Add(id)
		}
	}
	return diff
}

// AddSet adds all block ids in the other set to this set
func (is IDSet) AddSet(other IDSet) {
	for id := range other {
		is.Add(id)
	}
}

// ToSlice converts this set into a slice of ids, sorted in ascending order
func (is IDSet) ToSlice() []externalapi.DomainBlockID {
	ids := make([]externalapi.DomainBlockID, 0, len(is))
	for id := range is {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (is IDSet) String() string {
	strs := make([]string, 0, len(is))
	for _, id := range is.ToSlice() {
		strs = append(strs, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(strs, ",")
}
