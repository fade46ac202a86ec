package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 30.0, cfg.IntervalSec)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, 3, cfg.SampleDirs)
	assert.Equal(t, 3, cfg.SampleImages)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Profile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte(
		"interval_sec: 10\nworkers: 2\nrecursive: true\nseed: 7\n"), 0644))

	cfg, err := Load(profile)
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.IntervalSec)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, int64(7), cfg.Seed)
	// Values absent from the profile keep their defaults.
	assert.Equal(t, 3, cfg.SampleDirs)
}

func TestLoad_EnvOverridesProfile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("interval_sec: 10\n"), 0644))

	t.Setenv("FRAMEGRAB_INTERVAL_SEC", "5")
	t.Setenv("FRAMEGRAB_SAMPLE_DIRS", "9")

	cfg, err := Load(profile)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.IntervalSec)
	assert.Equal(t, 9, cfg.SampleDirs)
}

func TestLoad_MissingProfile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.IntervalSec = 0
	assert.ErrorContains(t, cfg.Validate(), "interval")

	cfg = Default()
	cfg.Workers = -1
	assert.ErrorContains(t, cfg.Validate(), "workers")

	cfg = Default()
	cfg.SampleDirs = -1
	assert.ErrorContains(t, cfg.Validate(), "sample")
}

func TestBuilder_Overrides(t *testing.T) {
	interval := 15.0
	workers := 8
	seed := int64(99)

	cfg := NewBuilder(Default()).
		WithOutputRoot("/out").
		WithInterval(&interval).
		WithWorkers(&workers).
		WithRecursive(true).
		WithSeed(&seed).
		WithContactSheet(true).
		WithLogLevel("debug").
		Build()

	assert.Equal(t, "/out", cfg.OutputRoot)
	assert.Equal(t, 15.0, cfg.IntervalSec)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.ContactSheet)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestBuilder_NilLeavesDefaults(t *testing.T) {
	cfg := NewBuilder(Default()).
		WithInterval(nil).
		WithWorkers(nil).
		WithMaxVideos(nil).
		WithSampleDirs(nil).
		WithSampleImages(nil).
		WithSeed(nil).
		Build()

	assert.Equal(t, Default().IntervalSec, cfg.IntervalSec)
	assert.Equal(t, Default().Workers, cfg.Workers)
}
