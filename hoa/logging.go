package hoa

import (
	"go.uber.org/zap"

	"github.com/atlekbai/omega/internal/logging"
)

func logger() *zap.Logger {
	return logging.Named("hoa")
}
