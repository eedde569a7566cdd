package simcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "mvm.eeprom", cfg.EEPROM.Path)
	assert.Equal(t, 64, cfg.EEPROM.Size)
	assert.Equal(t, float32(100), cfg.Tank.SensorHeightCm)
	assert.Equal(t, float32(50), cfg.Tank.StartLevelCm)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvm.yaml")
	data := `
tank:
  sensor_height_cm: 200
sensor:
  dropout_prob: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(200), cfg.Tank.SensorHeightCm)
	assert.Equal(t, float32(0.5), cfg.Sensor.DropoutProb)
	assert.Equal(t, "mvm.eeprom", cfg.EEPROM.Path)
	assert.Equal(t, float32(5), cfg.Tank.FillRateCmSec)
}

func TestLoadClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvm.yaml")
	data := `
tank:
  sensor_height_cm: 80
  start_level_cm: 500
sensor:
  noise_cm: -1
  dropout_prob: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(80), cfg.Tank.StartLevelCm)
	assert.Equal(t, float32(0), cfg.Sensor.NoiseCm)
	assert.Equal(t, float32(1), cfg.Sensor.DropoutProb)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tank: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvm.yaml")

	cfg := Default()
	cfg.Tank.StartLevelCm = 33
	cfg.EEPROM.Path = "custom.eeprom"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
