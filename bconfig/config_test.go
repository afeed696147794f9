package bconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bisbm/engine"
)

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "bisbm.yaml")
	content := `
database:
  type: sqlite
storage:
  type: local
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 0.9, cfg.Search.Rho)
	assert.Equal(t, 2, cfg.Search.Kappa)
	assert.Equal(t, 10, cfg.Search.NM)
	assert.Equal(t, 4, cfg.Engine.NSweeps)
	assert.Equal(t, "exponential", cfg.Engine.CoolingKind)
}

func TestLoad_CustomValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "bisbm.yaml")
	content := `
search:
  rho: 0.8
  kappa: 3
  nm: 20
engine:
  n_sweeps: 8
  cooling_kind: linear
database:
  type: postgres
  host: db.example.com
  port: 5432
storage:
  type: local
  local_path: /tmp/storage
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.Search.Rho)
	assert.Equal(t, 3, cfg.Search.Kappa)
	assert.Equal(t, 20, cfg.Search.NM)
	assert.Equal(t, 8, cfg.Engine.NSweeps)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
}

func TestLoad_InvalidDatabaseType(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "bisbm.yaml")
	content := `
database:
  type: oracle
storage:
  type: local
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestLoad_COSWithCredentials(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "bisbm.yaml")
	content := `
database:
  type: sqlite
storage:
  type: cos
  bucket: test-bucket
  region: ap-guangzhou
  secret_id: test-id
  secret_key: test-key
`
	err := os.WriteFile(configFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "cos", cfg.Storage.Type)
	assert.Equal(t, "test-bucket", cfg.Storage.Bucket)
}

func TestValidate_BadRho(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Type: "sqlite"},
		Storage:  StorageConfig{Type: "local"},
		Search:   SearchConfig{Rho: 1.5, Kappa: 2},
		Engine:   EngineConfig{NSweeps: 1},
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search.rho")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/bisbm.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadFromReader(t *testing.T) {
	content := []byte(`
database:
  type: mysql
  host: mysql.local
storage:
  type: local
`)
	cfg, err := LoadFromReader("yaml", content)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Database.Type)
	assert.Equal(t, "mysql.local", cfg.Database.Host)
}

func TestToEngineConfig_CoolingKindMapping(t *testing.T) {
	cfg := &Config{Engine: EngineConfig{NSweeps: 4, CoolingKind: "logarithmic", CoolingP1: 1.0}}
	ec := cfg.ToEngineConfig()
	assert.Equal(t, engine.Logarithmic, ec.Cooling.Kind)
	assert.Equal(t, "logarithmic", CoolingKindName(ec.Cooling.Kind))
}

func TestToSearchConfig_CarriesEngineConfig(t *testing.T) {
	cfg := &Config{
		Search: SearchConfig{Rho: 0.9, Kappa: 2, NM: 10, UseNaturalMerge: true},
		Engine: EngineConfig{NSweeps: 4, CoolingKind: "exponential", CoolingP1: 0.99},
	}
	sc := cfg.ToSearchConfig()
	assert.Equal(t, 0.9, sc.Rho)
	assert.Equal(t, 4, sc.Engine.NSweeps)
	assert.Equal(t, engine.Exponential, sc.Engine.Cooling.Kind)
}
