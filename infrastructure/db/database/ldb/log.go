package ldb

import (
	"github.com/stitchnet/stitchd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("LVDB")
