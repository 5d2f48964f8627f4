// pipeline_log.go - Package-level diagnostic logging

package rasterpipe

import (
	"io"
	"log"
	"os"
)

// pipelineLog is the package's diagnostic logger. Every stage is
// infallible once constructed (spec §7), so logging -- not error
// returns -- is how the pipeline surfaces things a host may care about.
// The one event logged is a viewport resize (Pool.Resize); tile overflow
// and faces skipped by the adaptive stride policy are not reported. Grounded on the stdlib "log" usage the
// teacher engine uses throughout its chip emulation (e.g. audio_chip.go);
// nothing in the retrieval pack reaches for a third-party logging
// library, so this package doesn't either.
var pipelineLog = log.New(os.Stderr, "rasterpipe: ", log.LstdFlags)

// SetLogOutput redirects package diagnostics, primarily for tests that
// want to assert on emitted warnings without polluting stderr.
func SetLogOutput(w io.Writer) {
	pipelineLog.SetOutput(w)
}
