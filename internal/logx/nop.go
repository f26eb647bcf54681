package logx

// Nop returns a Logger that discards everything. The dispatch packages use
// it as the default logger in tests and for optional collaborators.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

var _ Logger = nopLogger{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

func (nopLogger) With(...Field) Logger { return nopLogger{} }

func (nopLogger) Sync() error { return nil }
