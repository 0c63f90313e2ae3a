package commands

import (
	"os"

	"wedshare/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("wedshare error", "err", err.Error())
	_ = logger.Sync()
	os.Exit(1)
}
