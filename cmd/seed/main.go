// Command seed drives the public API of a running instance to create
// demo users, so a fresh environment has something to show on the
// leaderboard. Each listed user gets one check-in for today; rerun on
// later days to grow streaks.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "address of the running server")
	users := flag.String("users", "100001,100002,100003,100004,100005", "comma separated user ids to check in")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(15 * time.Second)

	for _, id := range strings.Split(*users, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		resp, err := client.R().Post("/api/checkin/" + id)
		if err != nil {
			slog.With("error", err.Error()).Error("check-in request failed", "userId", id)
			os.Exit(1)
		}
		slog.Info("check-in", "userId", id, "status", resp.StatusCode(), "body", strings.TrimSpace(string(resp.Body())))
	}

	resp, err := client.R().Get("/api/leaderboard")
	if err != nil {
		slog.With("error", err.Error()).Error("failed to fetch leaderboard")
		os.Exit(1)
	}
	var pretty map[string]any
	if err := json.Unmarshal(resp.Body(), &pretty); err != nil {
		slog.With("error", err.Error()).Error("failed to parse leaderboard response")
		os.Exit(1)
	}
	out, _ := json.MarshalIndent(pretty, "", "  ")
	slog.Info("leaderboard\n" + string(out))
}
