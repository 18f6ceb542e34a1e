package testutil

import (
	"io"

	"github.com/oyasar/staffdir/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(0, io.Discard)
}
