package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"furniture/internal/jobs"
	"furniture/internal/pkg/errs"

	"github.com/lib/pq"
)

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	DatabaseURL string

	ReconcileDelays                jobs.ReconcileDelays
	ProductionRetryMaxAttempts     uint64
	ProductionRetryInitialInterval time.Duration
	ProductionSweepSchedule        string
	KanbanRepairSchedule           string
}

// LoadConfig reads the configuration through getenv. Unset tuning variables
// keep their defaults; malformed ones are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:    getenv("HTTP_PORT"),
		DBHost:      getenv("DB_HOST"),
		DBPort:      getenv("DB_PORT"),
		DBUser:      getenv("DB_USER"),
		DBPassword:  getenv("DB_PASSWORD"),
		DBName:      getenv("DB_NAME"),
		DBSslMode:   getenv("DB_SSLMODE"),
		DatabaseURL: getenv("DATABASE_URL"),

		ReconcileDelays:                jobs.DefaultReconcileDelays,
		ProductionRetryMaxAttempts:     jobs.DefaultRetryPolicy.MaxAttempts,
		ProductionRetryInitialInterval: jobs.DefaultRetryPolicy.InitialInterval,
		ProductionSweepSchedule:        orDefault(getenv("PRODUCTION_SWEEP_SCHEDULE"), jobs.DefaultProductionSweepSchedule),
		KanbanRepairSchedule:           orDefault(getenv("KANBAN_REPAIR_SCHEDULE"), jobs.DefaultKanbanRepairSchedule),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}

	var delaysErr, attemptsErr, intervalErr error
	if v := getenv("RECONCILE_DELAYS"); v != "" {
		config.ReconcileDelays, delaysErr = parseReconcileDelays(v)
	}
	if v := getenv("PRODUCTION_RETRY_MAX_ATTEMPTS"); v != "" {
		config.ProductionRetryMaxAttempts, attemptsErr = parseAttempts(v)
	}
	if v := getenv("PRODUCTION_RETRY_INITIAL_INTERVAL"); v != "" {
		config.ProductionRetryInitialInterval, intervalErr = parseDuration("PRODUCTION_RETRY_INITIAL_INTERVAL", v)
	}

	if err := errors.Join(delaysErr, attemptsErr, intervalErr); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN returns the connection string for gorm. DATABASE_URL wins over the
// individual DB_* variables.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("DATABASE_URL", err)
		}
		return dsn, nil
	}

	if c.DBHost == "" || c.DBName == "" {
		return "", errs.NewValueIsRequiredError("DB_HOST and DB_NAME or DATABASE_URL")
	}

	pairs := make([]string, 0, 6)
	add := func(key, value string) {
		if value != "" {
			pairs = append(pairs, key+"="+quoteDSNValue(value))
		}
	}
	add("host", c.DBHost)
	add("port", orDefault(c.DBPort, "5432"))
	add("user", c.DBUser)
	add("password", c.DBPassword)
	add("dbname", c.DBName)
	add("sslmode", orDefault(c.DBSslMode, "disable"))

	// Same layout as pq.ParseURL so both branches yield comparable strings.
	sort.Strings(pairs)
	return strings.Join(pairs, " "), nil
}

var dsnValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(v string) string {
	return "'" + dsnValueEscaper.Replace(v) + "'"
}

// RetryPolicy returns the production dispatcher retry settings.
func (c Config) RetryPolicy() jobs.RetryPolicy {
	return jobs.RetryPolicy{
		MaxAttempts:     c.ProductionRetryMaxAttempts,
		InitialInterval: c.ProductionRetryInitialInterval,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// parseReconcileDelays accepts exactly "short,long" with short < long.
func parseReconcileDelays(v string) (jobs.ReconcileDelays, error) {
	const name = "RECONCILE_DELAYS"

	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return jobs.ReconcileDelays{}, errs.NewValueIsInvalidErrorWithCause(
			name,
			fmt.Errorf("want two comma separated delays, got %d", len(parts)),
		)
	}

	short, err := parseDuration(name, strings.TrimSpace(parts[0]))
	if err != nil {
		return jobs.ReconcileDelays{}, err
	}
	long, err := parseDuration(name, strings.TrimSpace(parts[1]))
	if err != nil {
		return jobs.ReconcileDelays{}, err
	}

	delays := jobs.ReconcileDelays{Short: short, Long: long}
	if err := delays.Validate(); err != nil {
		return jobs.ReconcileDelays{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return delays, nil
}

func parseDuration(name, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsOutOfRangeError(name, d, "1ns", "unbounded")
	}
	return d, nil
}

func parseAttempts(v string) (uint64, error) {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("PRODUCTION_RETRY_MAX_ATTEMPTS", err)
	}
	if n == 0 {
		return 0, errs.NewValueIsOutOfRangeError("PRODUCTION_RETRY_MAX_ATTEMPTS", n, 1, "unbounded")
	}
	return n, nil
}
