package envvars

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	ProjectID          = "GCP_PROJECT_ID"
	Port               = "PORT"
	Environment        = "ENVIRONMENT"
	SeasonPolicy       = "SEASON_POLICY"
	SeasonEpoch        = "SEASON_EPOCH"
	SeasonWindowDays   = "SEASON_WINDOW_DAYS"
	LeaderboardSize    = "LEADERBOARD_SIZE"
	RateLimitPerMinute = "RATE_LIMIT_PER_MINUTE"
)

const (
	DevEnv        = "dev"
	ProductionEnv = "production"

	QuarterPolicy = "quarter"
	WindowPolicy  = "window"
)

type Env struct {
	ProjectID          string
	Port               string
	Environment        string
	SeasonPolicy       string
	SeasonEpoch        time.Time
	SeasonWindowDays   int
	LeaderboardSize    int
	RateLimitPerMinute int
}

func GetEvn() Env {
	projectID, ok := os.LookupEnv(ProjectID)
	if !ok {
		log.Fatalf("%s required", ProjectID)
	}
	env := Env{
		ProjectID:          projectID,
		Port:               lookup(Port, "8080"),
		Environment:        lookup(Environment, DevEnv),
		SeasonPolicy:       lookup(SeasonPolicy, QuarterPolicy),
		SeasonWindowDays:   lookupInt(SeasonWindowDays, 30),
		LeaderboardSize:    lookupInt(LeaderboardSize, 100),
		RateLimitPerMinute: lookupInt(RateLimitPerMinute, 60),
	}
	if env.SeasonPolicy != QuarterPolicy && env.SeasonPolicy != WindowPolicy {
		log.Fatalf("%s must be %q or %q", SeasonPolicy, QuarterPolicy, WindowPolicy)
	}
	if raw, ok := os.LookupEnv(SeasonEpoch); ok {
		epoch, err := time.Parse("2006-01-02", raw)
		if err != nil {
			log.Fatalf("%s must be a YYYY-MM-DD date: %v", SeasonEpoch, err)
		}
		env.SeasonEpoch = epoch
	}
	if env.SeasonPolicy == WindowPolicy && env.SeasonEpoch.IsZero() {
		log.Fatalf("%s required when %s=%s", SeasonEpoch, SeasonPolicy, WindowPolicy)
	}
	return env
}

func IsProd(env Env) bool {
	return env.Environment == ProductionEnv
}

func IsDev(env Env) bool {
	return env.Environment == DevEnv
}

func lookup(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func lookupInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return value
}
