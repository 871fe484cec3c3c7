package cmd_test

import (
	"testing"
	"time"

	"furniture/cmd"
	"furniture/internal/jobs"
	"furniture/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := cmd.LoadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, jobs.DefaultReconcileDelays, config.ReconcileDelays)
	assert.Equal(t, jobs.DefaultRetryPolicy, config.RetryPolicy())
	assert.Equal(t, jobs.DefaultProductionSweepSchedule, config.ProductionSweepSchedule)
	assert.Equal(t, jobs.DefaultKanbanRepairSchedule, config.KanbanRepairSchedule)
}

func TestLoadConfigOverrides(t *testing.T) {
	config, err := cmd.LoadConfig(env(map[string]string{
		"HTTP_PORT":                         "9000",
		"RECONCILE_DELAYS":                  "10ms, 1s",
		"PRODUCTION_RETRY_MAX_ATTEMPTS":     "5",
		"PRODUCTION_RETRY_INITIAL_INTERVAL": "250ms",
		"PRODUCTION_SWEEP_SCHEDULE":         "*/30 * * * * *",
		"KANBAN_REPAIR_SCHEDULE":            "0 30 2 * * *",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9000", config.HTTPPort)
	assert.Equal(t, jobs.ReconcileDelays{Short: 10 * time.Millisecond, Long: time.Second}, config.ReconcileDelays)
	assert.Equal(t, jobs.RetryPolicy{MaxAttempts: 5, InitialInterval: 250 * time.Millisecond}, config.RetryPolicy())
	assert.Equal(t, "*/30 * * * * *", config.ProductionSweepSchedule)
	assert.Equal(t, "0 30 2 * * *", config.KanbanRepairSchedule)
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	tests := map[string]map[string]string{
		"bad delay":        {"RECONCILE_DELAYS": "50ms,soon"},
		"negative delay":   {"RECONCILE_DELAYS": "-1s,2s"},
		"single delay":     {"RECONCILE_DELAYS": "50ms"},
		"five delays":      {"RECONCILE_DELAYS": "10ms,20ms,30ms,40ms,50ms"},
		"descending delay": {"RECONCILE_DELAYS": "500ms,50ms"},
		"equal delays":     {"RECONCILE_DELAYS": "1s,1s"},
		"zero attempts":    {"PRODUCTION_RETRY_MAX_ATTEMPTS": "0"},
		"textual attempts": {"PRODUCTION_RETRY_MAX_ATTEMPTS": "three"},
		"bad interval":     {"PRODUCTION_RETRY_INITIAL_INTERVAL": "fast"},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := cmd.LoadConfig(env(values))

			require.Error(t, err)
			assert.True(t, errs.IsInvalidArgument(err))
		})
	}
}

func TestDSN(t *testing.T) {
	t.Run("from parts", func(t *testing.T) {
		config := cmd.Config{DBHost: "db", DBUser: "app", DBPassword: "pw", DBName: "furniture"}

		dsn, err := config.DSN()

		require.NoError(t, err)
		assert.Equal(t, "dbname='furniture' host='db' password='pw' port='5432' sslmode='disable' user='app'", dsn)
	})

	t.Run("from parts quotes the password", func(t *testing.T) {
		config := cmd.Config{DBHost: "db", DBUser: "app", DBPassword: `p w'd\x`, DBName: "furniture"}

		dsn, err := config.DSN()

		require.NoError(t, err)
		assert.Contains(t, dsn, `password='p w\'d\\x'`)
	})

	t.Run("from parts matches the equivalent url", func(t *testing.T) {
		parts := cmd.Config{DBHost: "db", DBPort: "5433", DBUser: "app", DBPassword: "pw", DBName: "furniture", DBSslMode: "require"}
		url := cmd.Config{DatabaseURL: "postgres://app:pw@db:5433/furniture?sslmode=require"}

		fromParts, err := parts.DSN()
		require.NoError(t, err)
		fromURL, err := url.DSN()
		require.NoError(t, err)

		assert.Equal(t, fromURL, fromParts)
	})

	t.Run("from url", func(t *testing.T) {
		config := cmd.Config{DatabaseURL: "postgres://app:pw@db:5433/furniture?sslmode=require", DBHost: "ignored"}

		dsn, err := config.DSN()

		require.NoError(t, err)
		assert.Equal(t, "dbname='furniture' host='db' password='pw' port='5433' sslmode='require' user='app'", dsn)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := cmd.Config{DatabaseURL: "mysql://db/furniture"}.DSN()

		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("missing host", func(t *testing.T) {
		_, err := cmd.Config{DBName: "furniture"}.DSN()

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
