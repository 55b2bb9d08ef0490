package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/stitchnet/stitchd/domain/dagconfig"
	"github.com/stitchnet/stitchd/infrastructure/logger"
	"github.com/stitchnet/stitchd/version"
)

const (
	defaultLogFilename    = "stitchsim.log"
	defaultErrLogFilename = "stitchsim_err.log"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"

	defaultNumBlocks      = 150
	defaultMaxParents     = 3
	defaultStitchInterval = 5
	defaultPrintInterval  = 30
	defaultSymbolSize     = 128
	defaultRepairPackets  = 50
	defaultSimulatedLoss  = 30
)

var (
	// Default configuration options
	defaultHomeDir    = btcutil.AppDataDir("stitchsim", false)
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
)

type configFlags struct {
	ShowVersion     bool   `short:"V" long:"version" description:"Display version information and exit"`
	K               uint8  `long:"k" description:"GHOSTDAG k-parameter: maximum tolerated anticone size for Blue classification"`
	StitchThreshold uint64 `long:"stitchthreshold" description:"Tip-set size above which all tips are merged into one block"`
	NumBlocks       uint64 `short:"n" long:"numblocks" description:"Number of blocks to create"`
	MaxParents      int    `long:"maxparents" description:"Maximum number of parents picked per block"`
	StitchInterval  uint64 `long:"stitchinterval" description:"Number of blocks between stitch checks"`
	PrintInterval   uint64 `long:"printinterval" description:"Number of blocks between DAG state dumps. 0 disables them"`
	SymbolSize      int    `long:"symbolsize" description:"FEC symbol size in bytes"`
	RepairPackets   int    `long:"repairpackets" description:"Number of FEC repair packets"`
	SimulatedLoss   int    `long:"loss" description:"Number of packets to drop before decoding"`
	Seed            int64  `long:"seed" description:"Seed for the simulation RNG. 0 seeds from the current time"`
	DataDir         string `short:"b" long:"datadir" description:"Directory to archive the resulting DAG into"`
	NoArchive       bool   `long:"noarchive" description:"Don't archive the resulting DAG"`
	LogLevel        string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		K:               uint8(dagconfig.DefaultK),
		StitchThreshold: dagconfig.DefaultStitchThreshold,
		NumBlocks:       defaultNumBlocks,
		MaxParents:      defaultMaxParents,
		StitchInterval:  defaultStitchInterval,
		PrintInterval:   defaultPrintInterval,
		SymbolSize:      defaultSymbolSize,
		RepairPackets:   defaultRepairPackets,
		SimulatedLoss:   defaultSimulatedLoss,
		DataDir:         defaultDataDir,
		LogLevel:        defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	if cfg.NumBlocks == 0 {
		return nil, errors.New("--numblocks must be at least 1")
	}
	if cfg.MaxParents < 1 {
		return nil, errors.New("--maxparents must be at least 1")
	}
	if cfg.StitchInterval == 0 {
		return nil, errors.New("--stitchinterval must be at least 1")
	}
	if cfg.SymbolSize < 1 {
		return nil, errors.New("--symbolsize must be at least 1")
	}
	if cfg.RepairPackets < 1 {
		return nil, errors.New("--repairpackets must be at least 1")
	}
	if cfg.SimulatedLoss < 0 {
		return nil, errors.New("--loss may not be negative")
	}

	initLog(defaultLogFile, defaultErrLogFile)
	err = logger.SetLogLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
