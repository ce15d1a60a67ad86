//go:build linux && !cgo

package morse

import (
	"io"
	"log/slog"
	"os"
)

// AudioAvailable indicates whether a sound device can be used in this build.
// Linux audio needs cgo, so this build falls back to the terminal bell.
const AudioAvailable = false

func openSpeaker() (io.WriteCloser, error) {
	slog.Warn("audio requires cgo on linux, using the terminal bell")
	return newBellSink(os.Stdout), nil
}
