package dbaccess

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/stitchnet/stitchd/infrastructure/db/database"
	"github.com/stitchnet/stitchd/util/binaryserializer"
)

var manifestKey = []byte("manifest")

// manifest describes an archived DAG: how many blocks were stored and a
// BLAKE2b-256 checksum over their digest sequence. The checksum lets a loader
// reject an archive whose block records no longer match what was written.
type manifest struct {
	blockCount uint64
	checksum   [blake2b.Size256]byte
}

func storeManifest(db database.Database, blockCount uint64, digestSequence []byte) error {
	m := manifest{
		blockCount: blockCount,
		checksum:   blake2b.Sum256(digestSequence),
	}

	w := &bytes.Buffer{}
	err := binaryserializer.PutUint64(w, m.blockCount)
	if err != nil {
		return err
	}
	_, err = w.Write(m.checksum[:])
	if err != nil {
		return errors.WithStack(err)
	}
	return db.Put(manifestKey, w.Bytes())
}

func fetchManifest(db database.Database) (*manifest, error) {
	manifestBytes, err := db.Get(manifestKey)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(manifestBytes)
	blockCount, err := binaryserializer.Uint64(r)
	if err != nil {
		return nil, err
	}
	m := &manifest{blockCount: blockCount}
	_, err = r.Read(m.checksum[:])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return m, nil
}
