package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/stitchnet/stitchd/domain/dag"
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dagconfig"
	"github.com/stitchnet/stitchd/infrastructure/db/database/ldb"
	"github.com/stitchnet/stitchd/infrastructure/db/dbaccess"
	"github.com/stitchnet/stitchd/infrastructure/logger"
	"github.com/stitchnet/stitchd/util/panics"
	"github.com/stitchnet/stitchd/version"
)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	// Show version at startup.
	log.Infof("Version %s", version.Version())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("Simulating %d blocks with k=%d, stitch threshold %d, seed %d",
		cfg.NumBlocks, cfg.K, cfg.StitchThreshold, seed)
	rng := rand.New(rand.NewSource(seed))

	dagParams := &dagconfig.Params{
		K:               model.KType(cfg.K),
		StitchThreshold: cfg.StitchThreshold,
	}
	d := dag.NewFactory().NewDAG(dagParams)

	doneChan := make(chan struct{})
	spawn(func() {
		err := simLoop(d, cfg, rng)
		if err != nil {
			panic(errors.Wrap(err, "error in simulation loop"))
		}
		doneChan <- struct{}{}
	})
	<-doneChan

	log.Infof("Final state: %d blocks, %d tips, selected parent %d",
		d.BlockCount(), len(d.Tips()), d.SelectedParent())

	if !cfg.NoArchive {
		err = archiveDAG(d, cfg)
		if err != nil {
			panic(errors.Wrap(err, "error archiving the DAG"))
		}
	}

	err = fecRoundTrip(d, cfg, rng)
	if err != nil {
		panic(errors.Wrap(err, "error in FEC round trip"))
	}
}

// archiveDAG persists the full block set to a leveldb instance under the
// configured data directory.
func archiveDAG(d externalapi.DAG, cfg *configFlags) error {
	defer logger.LogAndMeasureExecutionTime(log, "archiveDAG")()

	db, err := ldb.NewLevelDB(cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Error closing the database: %s", err)
		}
	}()

	err = dbaccess.ArchiveDAG(db, d)
	if err != nil {
		return err
	}
	log.Infof("Archived %d blocks to %s", d.BlockCount(), cfg.DataDir)
	return nil
}
