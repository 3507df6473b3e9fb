package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search path only finds what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultBlockfallYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockfallConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockfallConfig(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", fileName), "board:\n  columns: 12\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Columns, "local configs dir is used")

	writeFile(t, filepath.Join(home, ".blockfall", "configs", fileName), "board:\n  columns: 14\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Board.Columns, "user dir wins over local dir")

	custom := filepath.Join(work, "mine.yaml")
	writeFile(t, custom, "board:\n  columns: 8\n")
	cfg, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Columns, "explicit path wins over everything")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	_, work := isolate(t)
	custom := filepath.Join(work, "partial.yaml")
	writeFile(t, custom, "scoring:\n  line_points: [0, 40, 100, 300, 1200]\ntiming:\n  initial_ms: 1000\n")

	cfg, err := Load(custom)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 40, 100, 300, 1200}, cfg.Scoring.LinePoints)
	assert.Equal(t, 1000, cfg.Timing.InitialMs)
	assert.Equal(t, 70, cfg.Timing.StepMs)
	assert.Equal(t, 10, cfg.Board.Columns)
	assert.Equal(t, 10, cfg.Scoring.LinesPerLevel)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	_, err := Load(filepath.Join(work, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "board:\n  columns: 2\n")
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadSkipsBrokenSearchPathFile(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", fileName), "board: [not, a, map\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockfallConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockfallConfig)
	}{
		{"narrow board", func(c *BlockfallConfig) { c.Board.Columns = 3 }},
		{"short board", func(c *BlockfallConfig) { c.Board.Rows = 0 }},
		{"negative buffer", func(c *BlockfallConfig) { c.Board.BufferRows = -1 }},
		{"empty line points", func(c *BlockfallConfig) { c.Scoring.LinePoints = []int{0} }},
		{"negative line points", func(c *BlockfallConfig) { c.Scoring.LinePoints = []int{0, -100} }},
		{"zero award for a clear", func(c *BlockfallConfig) { c.Scoring.LinePoints = []int{0, 100, 0, 500} }},
		{"negative base entry", func(c *BlockfallConfig) { c.Scoring.LinePoints = []int{-1, 100} }},
		{"negative drop points", func(c *BlockfallConfig) { c.Scoring.HardDropPerCell = -2 }},
		{"negative lines per level", func(c *BlockfallConfig) { c.Scoring.LinesPerLevel = -1 }},
		{"zero min tick", func(c *BlockfallConfig) { c.Timing.MinMs = 0 }},
		{"initial below min", func(c *BlockfallConfig) { c.Timing.InitialMs = 50 }},
		{"negative step", func(c *BlockfallConfig) { c.Timing.StepMs = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockfallConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultBlockfallConfig()
	cfg.Scoring.LinesPerLevel = 0
	cfg.Board.BufferRows = 0
	assert.NoError(t, cfg.Validate(), "leveling off and no buffer are allowed")
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"NORMAL", DifficultyNormal, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultBlockfallConfig()
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultBlockfallConfig(), normal)

	easy := DefaultBlockfallConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultBlockfallConfig()
	ApplyPreset(&hard, DifficultyHard)

	assert.Greater(t, easy.Timing.InitialMs, normal.Timing.InitialMs)
	assert.Less(t, hard.Timing.InitialMs, normal.Timing.InitialMs)
	assert.Less(t, hard.Timing.MinMs, normal.Timing.MinMs)
	assert.Equal(t, normal.Scoring, hard.Scoring, "presets only touch timing")
	assert.NoError(t, easy.Validate())
	assert.NoError(t, hard.Validate())
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initial_ms: 500")

	back, err := parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
