package scoring

import "go.uber.org/zap"

// LoggedCalculator wraps a Calculator and logs every calculation at debug level
// with the roll count, frame count, last resolved score, and any error.
type LoggedCalculator struct {
	inner  Calculator
	logger *zap.Logger
}

// NewLoggedCalculator creates a LoggedCalculator delegating to inner.
//
// Precondition: inner and logger must be non-nil.
func NewLoggedCalculator(inner Calculator, logger *zap.Logger) *LoggedCalculator {
	return &LoggedCalculator{inner: inner, logger: logger}
}

// Calculate delegates to the wrapped calculator and logs the outcome.
//
// Postcondition: returns exactly what the wrapped calculator returned.
func (c *LoggedCalculator) Calculate(rolls []int) []Frame {
	frames := c.inner.Calculate(rolls)

	fields := []zap.Field{
		zap.Int("rolls", len(rolls)),
		zap.Int("frames", len(frames)),
	}
	if score, ok := LastScore(frames); ok {
		fields = append(fields, zap.Int("score", score))
	}
	if f, ok := FirstError(frames); ok {
		fields = append(fields, zap.Int("frame", f.Number), zap.Error(f.Err))
	}
	c.logger.Debug("score calculated", fields...)
	return frames
}
