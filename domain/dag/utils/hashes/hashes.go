package hashes

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
)

// BlockHash computes the canonical hash of a block: SHA-256 over the block id
// followed by its parent ids sorted ascending, each serialized as 8 big-endian
// bytes. Sorting makes the digest independent of the parent order the caller
// happened to pass. Digests are compared and transmitted externally, so this
// serialization must stay byte-exact.
func BlockHash(id externalapi.DomainBlockID, parents []externalapi.DomainBlockID) *externalapi.DomainHash {
	sortedParents := make([]externalapi.DomainBlockID, len(parents))
	copy(sortedParents, parents)
	sort.Slice(sortedParents, func(i, j int) bool { return sortedParents[i] < sortedParents[j] })

	writer := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	writer.Write(buf[:])
	for _, parent := range sortedParents {
		binary.BigEndian.PutUint64(buf[:], uint64(parent))
		writer.Write(buf[:])
	}

	var hashArray [externalapi.DomainHashSize]byte
	copy(hashArray[:], writer.Sum(nil))
	return externalapi.NewDomainHashFromByteArray(&hashArray)
}
