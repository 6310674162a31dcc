package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSecrets(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		secrets, err := ParseSecrets([]byte(`{"simulationBackend": {"baseUrl": "http://localhost:8080/api"}}`))
		require.NoError(t, err)
		require.Equal(t, 3009, secrets.Port)
		require.Equal(t, 30, secrets.SimulationBackend.TimeoutSeconds)
	})

	t.Run("missing backend url", func(t *testing.T) {
		_, err := ParseSecrets([]byte(`{"port": 4000}`))
		require.ErrorContains(t, err, "baseUrl")
	})

	t.Run("connection string", func(t *testing.T) {
		secrets, err := ParseSecrets([]byte(`{
			"db": {"host": "localhost", "port": "5440", "user": "postgres", "password": "postgres", "database": "simcompare"},
			"simulationBackend": {"baseUrl": "http://backend"}
		}`))
		require.NoError(t, err)
		require.Equal(t,
			"host=localhost port=5440 user=postgres password=postgres dbname=simcompare sslmode=disable",
			secrets.Db.ToConnectionStr(),
		)
	})
}

func TestLoadSecrets(t *testing.T) {
	p := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"port": 4000, "simulationBackend": {"baseUrl": "http://backend"}, "auth": {"jwtDecodeToken": "s"}}`), 0o600))
	t.Setenv("SIMCOMPARE_SECRETS", p)

	secrets, err := LoadSecrets()
	require.NoError(t, err)
	require.Equal(t, 4000, secrets.Port)
	require.Equal(t, "s", secrets.Auth.JwtDecodeToken)
}
