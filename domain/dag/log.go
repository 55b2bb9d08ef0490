package dag

import (
	"github.com/stitchnet/stitchd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BDAG")
