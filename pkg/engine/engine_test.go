/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine_test.go
Description: Tests for the RoughRules engine. Covers configuration validation, a full
run from a file, reporter notification order, strict mode and cancellation.
*/

package engine_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/roughrules/pkg/engine"
	"github.com/kleascm/roughrules/pkg/induction"
	"github.com/kleascm/roughrules/pkg/logging"
	"github.com/kleascm/roughrules/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const system = `sunny hot no
sunny cold no
rain hot yes
`

const contradictory = `sunny hot no
sunny hot yes
rain cold yes
`

func writeSystem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  engine.Config
		wantErr error
	}{
		{"valid", engine.Config{InputPath: "x.txt", Algorithm: "covering"}, nil},
		{"missing input", engine.Config{Algorithm: "lem2"}, engine.ErrNoInput},
		{"unknown algorithm", engine.Config{InputPath: "x.txt", Algorithm: "id3"}, induction.ErrUnknownAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunFromFile(t *testing.T) {
	path := writeSystem(t, system)
	collector := &engine.CollectingReporter{}

	e := engine.NewEngine()
	e.AddReporter(collector)

	run, err := e.Run(context.Background(), &engine.Config{InputPath: path, Algorithm: "covering"})
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, induction.Covering, run.Algorithm)
	assert.Equal(t, path, run.Source)
	assert.Equal(t, 3, run.Stats.Rows)
	assert.Equal(t, 2, run.Stats.Attributes)
	assert.True(t, run.Consistent())

	require.Len(t, run.Rules, 2)
	assert.Equal(t, "a0=sunny => no (support=2)", run.Rules[0].String())
	assert.Equal(t, "a0=rain => yes (support=1)", run.Rules[1].String())

	require.Len(t, collector.Loaded, 1)
	require.Len(t, collector.Finished, 1)
	assert.Same(t, run, collector.Loaded[0])
	assert.Same(t, run, collector.Finished[0])
	assert.Equal(t, run.Rules, collector.Induced)
}

func TestRunReportsLoadErrors(t *testing.T) {
	e := engine.NewEngine()

	_, err := e.Run(context.Background(), &engine.Config{
		InputPath: filepath.Join(t.TempDir(), "missing.txt"),
		Algorithm: "lem2",
	})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = e.Run(context.Background(), &engine.Config{Algorithm: "lem2"})
	assert.ErrorIs(t, err, engine.ErrNoInput)

	path := writeSystem(t, "a b c\nd e\n")
	_, err = e.Run(context.Background(), &engine.Config{InputPath: path, Algorithm: "lem2"})
	assert.ErrorIs(t, err, table.ErrRaggedRow)
}

func TestStrictMode(t *testing.T) {
	path := writeSystem(t, contradictory)

	for _, algorithm := range induction.Algorithms() {
		t.Run(string(algorithm), func(t *testing.T) {
			e := engine.NewEngine()

			run, err := e.Run(context.Background(), &engine.Config{InputPath: path, Algorithm: string(algorithm)})
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1}, run.Unexplained)
			assert.False(t, run.Consistent())

			run, err = e.Run(context.Background(), &engine.Config{InputPath: path, Algorithm: string(algorithm), Strict: true})
			assert.ErrorIs(t, err, induction.ErrInconsistentTable)
			require.NotNil(t, run, "the partial run is still returned")
			assert.NotEmpty(t, run.Rules)
		})
	}
}

func TestInduceWithoutSymbols(t *testing.T) {
	tbl, err := table.New([][]table.Code{
		{0, 0, 1},
		{0, 1, 1},
		{1, 0, 2},
	})
	require.NoError(t, err)

	run, err := engine.NewEngine().Induce(context.Background(), "lem2", tbl, nil, "memory", false)
	require.NoError(t, err)
	require.Len(t, run.Rules, 2)
	assert.Equal(t, "a0=0 => 1 (support=2)", run.Rules[0].String())

	_, err = engine.NewEngine().Induce(context.Background(), "lem2", nil, nil, "memory", false)
	assert.ErrorIs(t, err, induction.ErrNilTable)
}

func TestInduceHonoursCancellation(t *testing.T) {
	tbl, _, err := table.Parse(strings.NewReader(system))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	collector := &engine.CollectingReporter{}
	e := engine.NewEngine()
	e.AddReporter(collector)

	_, err = e.Induce(ctx, "exhaustive", tbl, nil, "memory", false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, collector.Induced)
	assert.Empty(t, collector.Finished)
}

func TestLoggerReporter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewLoggerWithWriter(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: logging.LogFormatInduction,
	}, &buf)
	require.NoError(t, err)
	defer logger.Close()

	e := engine.NewEngine()
	e.AddReporter(engine.NewLoggerReporter(logger))

	_, err = e.Run(context.Background(), &engine.Config{InputPath: writeSystem(t, contradictory), Algorithm: "covering"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[TABLE] Table loaded")
	assert.Contains(t, out, "[TABLE] Table contains contradictory rows")
	assert.Contains(t, out, "[RULE] Rule induced: a0=rain => yes (support=1)")
	assert.Contains(t, out, "rows=[0 1]")
	assert.Contains(t, out, "[RUN] Run finished")
}

func TestCompareRunsEveryAlgorithm(t *testing.T) {
	path := writeSystem(t, system)
	collector := &engine.CollectingReporter{}

	e := engine.NewEngine()
	e.AddReporter(collector)

	runs, err := e.Compare(context.Background(), path, nil)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	for i, a := range induction.Algorithms() {
		assert.Equal(t, a, runs[i].Algorithm)
		assert.Equal(t, 3, runs[i].Stats.Rows)
		assert.True(t, runs[i].Consistent())
	}
	assert.Len(t, runs[0].Rules, 2)
	assert.Len(t, collector.Finished, 3)

	ids := map[string]bool{}
	for _, run := range runs {
		ids[run.ID] = true
	}
	assert.Len(t, ids, 3, "every worker gets its own run")
}

func TestCompareKeepsRequestedOrder(t *testing.T) {
	path := writeSystem(t, contradictory)

	runs, err := engine.NewEngine().Compare(context.Background(), path, []string{"lem2", "covering"})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, induction.LEM2, runs[0].Algorithm)
	assert.Equal(t, induction.Covering, runs[1].Algorithm)
	assert.Equal(t, []int{0, 1}, runs[0].Unexplained)
}

func TestCompareValidation(t *testing.T) {
	e := engine.NewEngine()

	_, err := e.Compare(context.Background(), "", nil)
	assert.ErrorIs(t, err, engine.ErrNoInput)

	_, err = e.Compare(context.Background(), writeSystem(t, system), []string{"covering", "id3"})
	assert.ErrorIs(t, err, induction.ErrUnknownAlgorithm)
}
