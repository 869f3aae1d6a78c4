// Package httpapi serves Prometheus metrics and read-only game statistics
// next to the SSH server.
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/mines"
	"github.com/vovakirdan/tui-mines/internal/metrics"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Handler holds the dependencies of the API routes.
type Handler struct {
	Store  *storage.Store
	Logger *log.Logger
}

// Board describes one preset.
type Board struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Mines     int    `json:"mines"`
	TimeLimit int    `json:"time_limit"`
}

// Result is the JSON form of a stored game result.
type Result struct {
	ID        string    `json:"id"`
	Board     string    `json:"board"`
	Outcome   string    `json:"outcome"`
	Reason    string    `json:"reason,omitempty"`
	Score     int       `json:"score"`
	Elapsed   int       `json:"elapsed"`
	Revealed  int       `json:"revealed"`
	CreatedAt time.Time `json:"created_at"`
}

// Score is one high score entry.
type Score struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats is the JSON form of aggregated board statistics.
type Stats struct {
	Board     string  `json:"board"`
	Played    int     `json:"played"`
	Won       int     `json:"won"`
	Exploded  int     `json:"exploded"`
	TimedOut  int     `json:"timed_out"`
	WinRate   float64 `json:"win_rate"`
	BestTime  int     `json:"best_time"`
	HighScore int     `json:"high_score"`
}

// NewRouter builds the HTTP routes. store and rec may be nil.
func NewRouter(store *storage.Store, rec *metrics.Recorder, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if logger != nil {
		r.Use(requestLogger(logger))
	}

	h := &Handler{Store: store, Logger: logger}

	r.GET("/metrics", gin.WrapH(rec.Handler()))
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	api.GET("/boards", h.ListBoards)
	api.GET("/boards/:id/best", h.requireStore, h.BestTimes)
	api.GET("/boards/:id/recent", h.requireStore, h.RecentResults)
	api.GET("/boards/:id/scores", h.requireStore, h.TopScores)
	api.GET("/boards/:id/stats", h.requireStore, h.BoardStats)
	api.GET("/results/:id", h.requireStore, h.GetResult)
	api.GET("/sessions/:id/results", h.requireStore, h.SessionResults)

	return r
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (h *Handler) requireStore(c *gin.Context) {
	if h.Store == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	c.Next()
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": h.Store != nil,
	})
}

// ListBoards returns the presets from easiest to hardest.
func (h *Handler) ListBoards(c *gin.Context) {
	boards := make([]Board, 0, len(config.Presets))
	for _, p := range config.Presets {
		pc := mines.Settings(p)
		boards = append(boards, Board{
			ID:        mines.GameID(p),
			Title:     pc.Title,
			Rows:      pc.Rows,
			Cols:      pc.Cols,
			Mines:     pc.Mines,
			TimeLimit: pc.TimeLimit,
		})
	}
	c.JSON(http.StatusOK, gin.H{"boards": boards})
}

// boardID validates the :id parameter against the known presets.
func boardID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	for _, p := range config.Presets {
		if mines.GameID(p) == id {
			return id, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown board"})
	return "", false
}

// queryLimit parses the optional ?limit= parameter.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return min(n, maxLimit), true
}

// BestTimes returns the fastest wins on a board.
func (h *Handler) BestTimes(c *gin.Context) {
	h.boardResults(c, "best times", h.Store.BestTimes)
}

// RecentResults returns the latest finished games on a board, won or lost.
func (h *Handler) RecentResults(c *gin.Context) {
	h.boardResults(c, "recent results", h.Store.RecentResults)
}

func (h *Handler) boardResults(c *gin.Context, what string, query func(string, int) ([]storage.GameResult, error)) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	results, err := query(id, limit)
	if err != nil {
		h.logError(what+" query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get " + what})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"board":   id,
		"results": toResults(results),
	})
}

// TopScores returns the highest scores on a board.
func (h *Handler) TopScores(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	entries, err := h.Store.TopScores(id, limit)
	if err != nil {
		h.logError("top scores query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get scores"})
		return
	}

	scores := make([]Score, len(entries))
	for i, e := range entries {
		scores[i] = Score{Rank: i + 1, Score: e.Score, CreatedAt: e.CreatedAt}
	}
	c.JSON(http.StatusOK, gin.H{
		"board":  id,
		"scores": scores,
	})
}

// SessionResults returns the games played in one SSH session or local run.
func (h *Handler) SessionResults(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	session := c.Param("id")
	results, err := h.Store.SessionResults(session, limit)
	if err != nil {
		h.logError("session results query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"results": toResults(results),
	})
}

// BoardStats returns aggregated statistics for a board.
func (h *Handler) BoardStats(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}

	s, err := h.Store.GetGameStats(id)
	if err != nil {
		h.logError("stats query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, Stats{
		Board:     id,
		Played:    s.Played,
		Won:       s.Won,
		Exploded:  s.Exploded,
		TimedOut:  s.TimedOut,
		WinRate:   s.WinRate(),
		BestTime:  s.BestTime,
		HighScore: s.HighScore,
	})
}

// GetResult returns a single stored result by UUID.
func (h *Handler) GetResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result id"})
		return
	}

	r, err := h.Store.ResultByID(id.String())
	if err != nil {
		h.logError("result query failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get result"})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		return
	}

	c.JSON(http.StatusOK, toResult(*r))
}

func (h *Handler) logError(msg string, err error) {
	if h.Logger != nil {
		h.Logger.Error(msg, "error", err)
	}
}

func toResults(rs []storage.GameResult) []Result {
	out := make([]Result, len(rs))
	for i, r := range rs {
		out[i] = toResult(r)
	}
	return out
}

func toResult(r storage.GameResult) Result {
	return Result{
		ID:        r.ResultID,
		Board:     r.GameID,
		Outcome:   r.Outcome,
		Reason:    r.Reason,
		Score:     r.Score,
		Elapsed:   r.Elapsed,
		Revealed:  r.Revealed,
		CreatedAt: r.CreatedAt,
	}
}
