package logging

import (
	"github.com/go-kit/kit/log"
)

// TestSink matches the variadic logging method shared by testing.T and
// testing.B, so test output stays attached to the test that produced it.
type TestSink interface {
	Log(...interface{})
}

// sinkWriter adapts a TestSink to io.Writer for the go-kit logger factories.
type sinkWriter struct {
	sink TestSink
}

func (w sinkWriter) Write(data []byte) (int, error) {
	w.sink.Log(string(data))
	return len(data), nil
}

// NewTestLogger produces a go-kit Logger that routes entries through the
// supplied testing log.  Passing nil options logs everything at DEBUG,
// since tests generally want all output available on failure.
func NewTestLogger(o *Options, sink TestSink) log.Logger {
	if o == nil {
		o = &Options{Level: "DEBUG"}
	}

	return NewFilter(
		log.With(
			o.loggerFactory()(sinkWriter{sink: sink}),
			TimestampKey(), log.DefaultTimestampUTC,
		),
		o,
	)
}
