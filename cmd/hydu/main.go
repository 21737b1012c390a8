// Command hydu runs the simulation headlessly for a fixed number of
// sub-steps, logging progress and writing a sampled stats CSV,
// replacing the teacher's raylib game loop (root main.go) for this
// grid+agent-pool domain where there is no rendering surface.
package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/keias1108/hyd-u/config"
	"github.com/keias1108/hyd-u/sim"
	"github.com/keias1108/hyd-u/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Bundle YAML file (empty = use defaults)")
	seed := flag.Int64("seed", 42, "RNG seed")
	steps := flag.Int("steps", 10000, "Number of sub-steps to run")
	sampleEvery := flag.Int("sample-every", 100, "Sub-steps between stat samples")
	logEvery := flag.Int("log-every", 1000, "Sub-steps between progress log lines (0 = disabled)")
	perfLog := flag.Bool("perf", false, "Log a per-kernel timing breakdown at the end of the run")
	csvOut := flag.String("csv", "", "Path to write sampled stats as CSV (empty = skip)")
	flag.Parse()

	bundle, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("hydu: loading config: %v", err)
	}

	s, err := sim.Init(bundle, *seed)
	if err != nil {
		log.Fatalf("hydu: init: %v", err)
	}

	driver := telemetry.NewBatchDriver(s, *sampleEvery)

	var allSamples []telemetry.FieldStats
	done := 0
	chunk := *logEvery
	if chunk <= 0 {
		chunk = *steps
	}
	for done < *steps {
		n := chunk
		if done+n > *steps {
			n = *steps - done
		}
		result := driver.Run(n)
		allSamples = append(allSamples, result.Samples...)
		done += result.Completed
		if *logEvery > 0 {
			result.FinalStats.LogStats(done)
		}
		if result.Cancelled {
			break
		}
	}

	if *perfLog {
		s.LogPerf(done)
	}

	if *csvOut != "" {
		if err := telemetry.WriteSamplesCSV(*csvOut, allSamples); err != nil {
			slog.Error("hydu: writing csv", "error", err)
		}
	}
}
