package omega

import (
	"go.uber.org/zap"

	"github.com/atlekbai/omega/internal/logging"
)

// SetLogger installs the logger used by this module and its subpackages.
// A nil logger silences them again.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}
