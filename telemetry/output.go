package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteSamplesCSV writes a batch run's sampled FieldStats to path as
// CSV, adapted from the teacher's OutputManager.WriteTelemetry
// (telemetry/output.go): a single gocsv.Marshal call since the whole
// run's samples are already in memory by the time a batch finishes.
func WriteSamplesCSV(path string, samples []FieldStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("telemetry: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(samples, f); err != nil {
		return fmt.Errorf("telemetry: writing %s: %w", path, err)
	}
	return nil
}
