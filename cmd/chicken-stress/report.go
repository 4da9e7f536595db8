package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/runchicken/game"
	"github.com/plus3/runchicken/world"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	MaxRounds  int
	ClickEvery int
	Lazy       float64

	// Results
	TotalUpdates   int64
	TotalSteps     int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Rounds         RoundTally
	Phases         []world.PhaseStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// RoundTally counts how rounds ended and what they left behind.
type RoundTally struct {
	Played    int
	Caught    int
	Idle      int
	Games     int
	Eaten     int
	BestRound int
	BestTotal int
	Spawned   int
	Pruned    int
	MaxBodies int
	Distance  float64
}

// Add books one finished round.
func (t *RoundTally) Add(stats world.WorldStats, reason game.EndReason, total int) {
	t.Played++
	switch reason {
	case game.Caught:
		t.Caught++
	case game.Idle:
		t.Idle++
	}
	t.Eaten += stats.EatenGrains
	t.BestRound = max(t.BestRound, stats.EatenGrains)
	t.BestTotal = max(t.BestTotal, total)
	t.Spawned += stats.SpawnedBodies
	t.Pruned += stats.PrunedBodies
	t.MaxBodies = max(t.MaxBodies, stats.BodyCount)
	t.Distance += stats.Camera.X
}

// AddPhases merges a round's step stats into the running totals, keeping the
// step's phase order.
func (r *Report) AddPhases(stats world.StepStats) {
	for _, phase := range stats.Phases {
		i := slices.IndexFunc(r.Phases, func(p world.PhaseStats) bool { return p.Name == phase.Name })
		if i < 0 {
			r.Phases = append(r.Phases, world.PhaseStats{Name: phase.Name})
			i = len(r.Phases) - 1
		}
		r.Phases[i].Add(phase)
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Run Chicken Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Round Limit:** {{if .MaxRounds}}{{.MaxRounds}}{{else}}none{{end}}
- **Click Every:** {{.ClickEvery}} steps
- **Lazy Rounds:** {{printf "%.0f" (pct .Lazy)}}%

## Rounds
- **Played:** {{.Rounds.Played}} in {{.Rounds.Games}} games
- **Caught:** {{.Rounds.Caught}}
- **Idle:** {{.Rounds.Idle}}
- **Grain Eaten:** {{.Rounds.Eaten}} (best round {{.Rounds.BestRound}}, best total {{.Rounds.BestTotal}})
- **Bodies Spawned:** {{.Rounds.Spawned}}
- **Bodies Pruned:** {{.Rounds.Pruned}}
- **Peak Bodies:** {{.Rounds.MaxBodies}}
- **Distance Run:** {{printf "%.1f" .Rounds.Distance}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Steps:** {{.TotalSteps}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Step):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
  - **P99:** {{.UpdateTime.P99}}

## Step Phases
{{range .Phases}}- {{.Name}}: {{.Runs}} runs, avg {{.Avg}}, max {{.Max}}, {{.Effects}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Heap (MiB):     {{mb .MemStatsEnd.HeapAlloc}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"pct": func(f float64) float64 {
			return f * 100
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
