package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	report, err := Run(ctx, Config{
		Width:      6,
		Height:     10,
		Seed:       7,
		ClearRatio: 0.8,
		UndoRatio:  0.5,
		Check:      true,
	})
	require.NoError(t, err)

	assert.Greater(t, report.Rounds, int64(0))
	assert.Equal(t, report.Rounds, report.Undos+report.Commits)
	assert.Zero(t, report.UndoMismatches)

	var placed int64
	for _, b := range report.Outcomes {
		placed += b.Count
	}
	assert.Equal(t, report.Rounds, placed)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "# Board Stress Report")
	assert.Contains(t, out.String(), "out-of-bounds:")
	assert.Contains(t, out.String(), report.RunID.String())
}

func TestRunRejectsTinyBoard(t *testing.T) {
	_, err := Run(context.Background(), Config{Width: 2, Height: 10})
	assert.Error(t, err)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}
