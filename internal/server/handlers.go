package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	calc "github.com/aw-devel/Tacton-Code-Test-A"
	"github.com/aw-devel/Tacton-Code-Test-A/internal/history"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

type historyEntry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

const defaultHistoryLimit = 20

func (s *Server) handleEvaluate(c echo.Context) error {
	var req evaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := calc.Evaluate(req.Expression)
	if err != nil {
		return err
	}

	if s.store != nil {
		if _, err := s.store.Record(req.Expression, result); err != nil {
			// Recording is best effort; the evaluation itself succeeded.
			slog.Error("failed to record evaluation", "error", err)
		}
	}

	return c.JSON(http.StatusOK, evaluateResponse{
		Expression: req.Expression,
		Result:     result,
	})
}

func (s *Server) handleHistory(c echo.Context) error {
	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	entries := []history.Entry{}
	if s.store != nil {
		var err error
		entries, err = s.store.Recent(limit)
		if err != nil {
			return err
		}
	}

	out := make([]historyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntry{
			ID:         e.ID,
			Expression: e.Expression,
			Result:     e.Result,
			CreatedAt:  e.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": out})
}

func (s *Server) handleHealth(c echo.Context) error {
	if s.checker != nil && !s.checker.Healthy(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
