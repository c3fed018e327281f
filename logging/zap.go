package logging

import (
	"github.com/go-kit/kit/log"
	"go.uber.org/zap"
)

// zapLogger bridges a zap.Logger into the go-kit Log interface.
type zapLogger struct {
	zap *zap.Logger
}

// FromZap adapts a zap logger so that it can be passed anywhere this
// module expects a go-kit Logger.  Key/value pairs are mapped onto zap
// fields; the message itself is left empty since go-kit carries the
// message as an ordinary key.
func FromZap(z *zap.Logger) log.Logger {
	return zapLogger{zap: z}
}

func (l zapLogger) Log(keyvals ...interface{}) error {
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = "invalid_key"
		}

		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	// a trailing key with no value is dropped rather than treated as a bug
	l.zap.Info("", fields...)
	return nil
}
