package envvars

import (
	"os"
	"testing"
	"time"
)

func TestGetEvn(t *testing.T) {
	// Backup and defer restore of environment variables
	backup := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range backup {
			pair := splitEnv(env)
			os.Setenv(pair[0], pair[1])
		}
	}()

	t.Run("defaults applied", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(ProjectID, "test-project")

		got := GetEvn()
		if got.ProjectID != "test-project" {
			t.Errorf("ProjectID = %q", got.ProjectID)
		}
		if got.Port != "8080" {
			t.Errorf("Port = %q, want default 8080", got.Port)
		}
		if got.Environment != DevEnv {
			t.Errorf("Environment = %q, want dev default", got.Environment)
		}
		if got.SeasonPolicy != QuarterPolicy {
			t.Errorf("SeasonPolicy = %q, want quarter default", got.SeasonPolicy)
		}
		if got.LeaderboardSize != 100 {
			t.Errorf("LeaderboardSize = %d, want 100", got.LeaderboardSize)
		}
		if got.RateLimitPerMinute != 60 {
			t.Errorf("RateLimitPerMinute = %d, want 60", got.RateLimitPerMinute)
		}
	})

	t.Run("overrides respected", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(ProjectID, "test-project")
		os.Setenv(Port, "9090")
		os.Setenv(Environment, ProductionEnv)
		os.Setenv(SeasonPolicy, WindowPolicy)
		os.Setenv(SeasonEpoch, "2025-01-01")
		os.Setenv(SeasonWindowDays, "14")
		os.Setenv(LeaderboardSize, "50")
		os.Setenv(RateLimitPerMinute, "120")

		got := GetEvn()
		if got.Port != "9090" {
			t.Errorf("Port = %q, want 9090", got.Port)
		}
		if got.SeasonPolicy != WindowPolicy || got.SeasonWindowDays != 14 {
			t.Errorf("season config = %q/%d, want window/14", got.SeasonPolicy, got.SeasonWindowDays)
		}
		wantEpoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		if !got.SeasonEpoch.Equal(wantEpoch) {
			t.Errorf("SeasonEpoch = %v, want %v", got.SeasonEpoch, wantEpoch)
		}
		if got.LeaderboardSize != 50 || got.RateLimitPerMinute != 120 {
			t.Errorf("limits = %d/%d, want 50/120", got.LeaderboardSize, got.RateLimitPerMinute)
		}
	})
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitEnv(env string) []string {
	var s []string
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			s = append(s, env[:i])
			s = append(s, env[i+1:])
			return s
		}
	}
	// Return slice with empty strings if no '=' is found
	return []string{"", ""}
}
