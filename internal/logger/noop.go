package logger

// NoOp is a logger that discards all messages. Useful in tests.
type NoOp struct{}

// NewNoOp creates a no-op logger.
func NewNoOp() Interface {
	return &NoOp{}
}

func (n *NoOp) Debug(string, ...any) {}
func (n *NoOp) Info(string, ...any)  {}
func (n *NoOp) Warn(string, ...any)  {}
func (n *NoOp) Error(string, ...any) {}
func (n *NoOp) Fatal(string, ...any) {}

// With returns the same no-op logger.
func (n *NoOp) With(...any) Interface { return n }

// Sync is a no-op.
func (n *NoOp) Sync() error { return nil }
