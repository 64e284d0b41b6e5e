package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"habitstreak/services/checkin"
	"habitstreak/services/leaderboard"
	"habitstreak/services/stats"
	"habitstreak/services/user"
)

// storeTimeout bounds every Firestore round trip so a stalled store
// fails the request instead of hanging it.
const storeTimeout = 10 * time.Second

type Server struct {
	UserService        user.Service
	CheckinService     checkin.Service
	LeaderboardService leaderboard.Service
	StatsService       stats.Service
}

func NewServer(
	userService user.Service,
	checkinService checkin.Service,
	leaderboardService leaderboard.Service,
	statsService stats.Service,
) Server {
	return Server{
		UserService:        userService,
		CheckinService:     checkinService,
		LeaderboardService: leaderboardService,
		StatsService:       statsService,
	}
}

// RegisterRoutes wires the API surface. The extra middleware applies
// to /api routes only, leaving /health unthrottled for probes.
func (s Server) RegisterRoutes(r *gin.Engine, apiMiddleware ...gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := r.Group("/api")
	api.Use(apiMiddleware...)
	api.GET("/user/:telegramId", s.GetUser)
	api.POST("/checkin/:telegramId", s.Checkin)
	api.GET("/leaderboard", s.Leaderboard)
	api.GET("/leaderboard/:season", s.Leaderboard)
	api.GET("/stats/:telegramId", s.Stats)
}

// GetUser (GET /api/user/:telegramId)
func (s Server) GetUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	profile, err := s.UserService.Profile(ctx, c.Param("telegramId"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Checkin (POST /api/checkin/:telegramId)
func (s Server) Checkin(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	result, err := s.CheckinService.Checkin(ctx, c.Param("telegramId"), time.Now())
	if errors.Is(err, checkin.ErrAlreadyCheckedIn) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Already checked in today",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Leaderboard (GET /api/leaderboard and /api/leaderboard/:season)
func (s Server) Leaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	board, err := s.LeaderboardService.Get(ctx, c.Param("season"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, board)
}

// Stats (GET /api/stats/:telegramId)
func (s Server) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	summary, err := s.StatsService.Get(ctx, c.Param("telegramId"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
