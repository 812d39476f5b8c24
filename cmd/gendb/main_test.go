package main

import (
	"os"
	"path/filepath"
	"testing"

	"Setpoint/internal/energy"
	"Setpoint/internal/energy/energytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "db.csv")
	require.NoError(t, os.WriteFile(input, []byte(energytest.CSV(energytest.Records())), 0o644))

	outputPath = filepath.Join(dir, "out", "db.gob")
	logLevel = "error"
	require.NoError(t, run(nil, []string{input}))

	data, err := energy.Load(outputPath)
	require.NoError(t, err)
	assert.Equal(t, len(energytest.Records()), data.Len())
	assert.NoError(t, data.Validate())
	assert.NoFileExists(t, outputPath+".tmp")
}

func TestRun_RejectsGobInput(t *testing.T) {
	logLevel = "error"
	assert.Error(t, run(nil, []string{"db/db.gob"}))
}

func TestRun_InvalidDataset(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "db.csv")
	short := energytest.Records()[:5]
	require.NoError(t, os.WriteFile(input, []byte(energytest.CSV(short)), 0o644))

	outputPath = filepath.Join(dir, "db.gob")
	logLevel = "error"
	skipValidate = false
	assert.Error(t, run(nil, []string{input}))
	assert.NoFileExists(t, outputPath)
}
