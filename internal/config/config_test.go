package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GRPC_ADDR", "API_TOKEN", "DATA_BACKEND", "DB_CONN_STR", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASSWORD", "DB_NAME", "MIGRATE_ON_START", "SEED_ASSETS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=walletledger sslmode=disable", cfg.DBConnStr)
	assert.True(t, cfg.MigrateOnStart)
	assert.True(t, cfg.SeedAssets)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRPC_ADDR", "127.0.0.1:9090")
	t.Setenv("DATA_BACKEND", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("SEED_ASSETS", "false")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "127.0.0.1:9090", cfg.GRPCAddr)
	assert.Equal(t, BackendPostgres, cfg.DataBackend)
	assert.Equal(t, "host=db port=5432 user=postgres password=postgres dbname=ledger sslmode=disable", cfg.DBConnStr)
	assert.False(t, cfg.SeedAssets)
	assert.NoError(t, cfg.Validate())

	t.Setenv("DB_CONN_STR", "postgres://u:p@h/db")
	assert.Equal(t, "postgres://u:p@h/db", Load(filepath.Join(t.TempDir(), "missing.env")).DBConnStr)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("API_TOKEN")
	os.Unsetenv("LOG_FORMAT")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_TOKEN=from-file\nLOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("API_TOKEN")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg := Load(path)
	assert.Equal(t, "from-file", cfg.APIToken)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "Valid memory config",
			cfg:  Config{GRPCAddr: ":8080", APIToken: "t", DataBackend: BackendMemory},
		},
		{
			name:    "Bad address",
			cfg:     Config{GRPCAddr: "8080", APIToken: "t", DataBackend: BackendMemory},
			wantErr: "invalid GRPC_ADDR",
		},
		{
			name:    "Port out of range",
			cfg:     Config{GRPCAddr: ":70000", APIToken: "t", DataBackend: BackendMemory},
			wantErr: "must be between 1 and 65535",
		},
		{
			name:    "Empty token",
			cfg:     Config{GRPCAddr: ":8080", APIToken: " ", DataBackend: BackendMemory},
			wantErr: "API_TOKEN cannot be empty",
		},
		{
			name:    "Unknown backend",
			cfg:     Config{GRPCAddr: ":8080", APIToken: "t", DataBackend: "sqlite"},
			wantErr: "invalid data backend 'sqlite'",
		},
		{
			name:    "Postgres without connection string",
			cfg:     Config{GRPCAddr: ":8080", APIToken: "t", DataBackend: BackendPostgres},
			wantErr: "connection string cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
