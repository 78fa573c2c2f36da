package constraint

import "go.uber.org/zap"

// Logger wraps zap.Logger with constraint-specific structured logging.
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new Logger. If logger is nil, uses a no-op logger.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("constraint")}
}

// Passthrough logs an under-budget observation.
func (l *Logger) Passthrough(constraint string, totalLines, totalChars int) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug("output passthrough",
		zap.String("constraint", constraint),
		zap.Int("total_lines", totalLines),
		zap.Int("total_chars", totalChars),
	)
}

// Folded logs an over-budget observation that was compressed.
func (l *Logger) Folded(constraint, folder string, total, hidden int) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info("output folded",
		zap.String("constraint", constraint),
		zap.String("folder", folder),
		zap.Int("total", total),
		zap.Int("hidden", hidden),
	)
}
