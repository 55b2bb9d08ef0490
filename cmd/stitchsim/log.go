package main

import (
	"fmt"
	"os"

	"github.com/stitchnet/stitchd/infrastructure/logger"
	"github.com/stitchnet/stitchd/util/panics"
)

var (
	backendLog = logger.BackendLog
	log        = logger.RegisterSubSystem("STSM")
	spawn      = panics.GoroutineWrapperFunc(log)
)

func initLog(logFile, errLogFile string) {
	err := backendLog.AddLogWriter(os.Stdout, logger.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stdout to the logger: %s\n", err)
		os.Exit(1)
	}
	logger.InitLog(logFile, errLogFile)
}
