package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"habitstreak/clients/gcp"
	"habitstreak/envvars"
	"habitstreak/middleware"
	"habitstreak/season"
	"habitstreak/services/checkin"
	"habitstreak/services/leaderboard"
	"habitstreak/services/stats"
	"habitstreak/services/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}
	env := envvars.GetEvn()

	db := gcp.CreateFirestore(context.Background(), env.ProjectID)
	defer db.Close()

	seasons := seasonPolicy(env)
	userService := user.NewService(db, seasons)
	checkinService := checkin.NewService(db, seasons)
	leaderboardService := leaderboard.NewService(db, seasons, env.LeaderboardSize)
	statsService := stats.NewService(userService, seasons)
	server := NewServer(userService, checkinService, leaderboardService, statsService)

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())
	server.RegisterRoutes(r, middleware.RateLimit(env.RateLimitPerMinute))

	s := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	slog.Info("Starting HTTP server", "port", env.Port, "seasonPolicy", env.SeasonPolicy)
	log.Fatal(s.ListenAndServe())
}

func seasonPolicy(env envvars.Env) season.Policy {
	if env.SeasonPolicy == envvars.WindowPolicy {
		return season.WindowPolicy{
			Epoch: env.SeasonEpoch,
			Days:  env.SeasonWindowDays,
		}
	}
	return season.QuarterPolicy{}
}
