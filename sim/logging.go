package sim

import (
	"fmt"
	"io"
	"time"
)

// logWriter is the destination for Logf output, adapted from the
// teacher's game.SetLogWriter/Logf pattern (game/logging.go) so batch
// runs can redirect progress output without a process-wide logger.
var logWriter io.Writer

// SetLogWriter sets the Logf destination. A nil writer falls back to
// stdout.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted progress line.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// LogPerf logs the current per-kernel timing breakdown in pipeline
// order, then the real-time budget it implies at the configured
// DeltaTime.
func (s *Sim) LogPerf(step int) {
	total := s.Perf.Total()
	Logf("=== Perf @ step %d (speed %dx) ===", step, s.Params.Sim.SpeedMultiplier)
	Logf("Total sub-step time: %s", total.Round(time.Microsecond))
	for _, name := range s.Perf.OrderedNames() {
		avg := s.Perf.Avg(name)
		pct := 0.0
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		Logf("  %-12s %10s  %5.1f%%", name, avg.Round(time.Microsecond), pct)
	}
	dt := time.Duration(s.Params.Sim.DeltaTime * float64(time.Second))
	if ratio := s.Perf.RealtimeRatio(dt); ratio > 0 {
		Logf("Real-time ratio: %.2fx (>1 means slower than simulated time)", ratio)
	}
}
