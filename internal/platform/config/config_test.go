package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		s, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "8080", s.Port)
		assert.Equal(t, "test-secret", s.JWTSecret)
		assert.Equal(t, 30*time.Minute, s.TokenTTL)
		assert.Equal(t, 60*time.Second, s.ReportCacheTTL)
		assert.True(t, s.RunMigrations)
	})

	t.Run("missing JWT_SECRET fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9090")
		t.Setenv("TOKEN_TTL_MINUTES", "120")
		t.Setenv("REPORT_CACHE_TTL_SECONDS", "5")
		t.Setenv("RUN_MIGRATIONS", "false")

		s, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", s.Port)
		assert.Equal(t, 2*time.Hour, s.TokenTTL)
		assert.Equal(t, 5*time.Second, s.ReportCacheTTL)
		assert.False(t, s.RunMigrations)
	})

	t.Run("invalid TTL values are rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		for _, v := range []string{"abc", "0", "-5"} {
			t.Setenv("TOKEN_TTL_MINUTES", v)
			_, err := Load()
			assert.Error(t, err, "TOKEN_TTL_MINUTES=%s should fail", v)
		}
	})
}
