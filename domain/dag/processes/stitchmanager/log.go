package stitchmanager

import (
	"github.com/stitchnet/stitchd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("STCH")
