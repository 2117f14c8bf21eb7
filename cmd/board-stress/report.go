package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/google/uuid"
)

type Report struct {
	RunID  uuid.UUID
	Config Config

	// Results
	Rounds         int64
	Resets         int64
	Undos          int64
	Commits        int64
	UndoMismatches int64
	Outcomes       []Bucket
	Cleared        []Bucket
	TotalTime      time.Duration
	RoundTime      Stats
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Bucket struct {
	Label string
	Count int64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Board Stress Report

Run {{.RunID}}

## Configuration
- **Run Duration:** {{.Config.Duration}}
- **Board:** {{.Config.Width}}x{{.Config.Height}}
- **Seed:** {{.Config.Seed}}
- **Clear Ratio:** {{.Config.ClearRatio}}
- **Undo Ratio:** {{.Config.UndoRatio}}
- **Consistency Check:** {{.Config.Check}}

## Rounds
- **Total Rounds:** {{.Rounds}}
- **Commits:** {{.Commits}}
- **Undos:** {{.Undos}} ({{.UndoMismatches}} mismatches)
- **Board Resets:** {{.Resets}}

## Placement Outcomes
{{range .Outcomes}}- {{.Label}}: {{.Count}} ({{pct .Count $.Rounds}})
{{end}}
## Rows Cleared Per ClearRows
{{range .Cleared}}- {{.Label}}: {{.Count}}
{{end}}
## Timing
- **Total Test Time:** {{.TotalTime}}
- **Round Time:**
  - **Avg:** {{.RoundTime.Avg}}
  - **Min:** {{.RoundTime.Min}}
  - **Max:** {{.RoundTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"pct": func(n, total int64) string {
			if total == 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
