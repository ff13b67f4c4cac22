package renderer

import (
	"fmt"
	"os"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing each message as one line
// to stderr (no timestamp), matching the teacher's renderer.DefaultLogger
// pattern.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// NewDefaultLogger returns the stderr logger used outside of tests.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
