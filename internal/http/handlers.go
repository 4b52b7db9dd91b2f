package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

type HealthzResponse struct {
	Status string `json:"status"`
}
type ReadyzResponse struct {
	Status string `json:"status"`
}

// Healthz liveness.
// @Summary     Liveness probe
// @Tags        meta
// @Produce     json
// @Success     200 {object} HealthzResponse
// @Router      /healthz [get]
func Healthz(c echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthzResponse{Status: "ok"})
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Readyz readiness (storage ping).
// @Summary     Readiness probe
// @Tags        meta
// @Produce     json
// @Success     200 {object} ReadyzResponse
// @Failure     503 {object} APIError
// @Router      /readyz [get]
func Readyz(store pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return writeJSON(c, http.StatusServiceUnavailable, APIError{Reason: "Storage not ready"})
		}
		return writeJSON(c, http.StatusOK, ReadyzResponse{Status: "ready"})
	}
}

// StrictJSONBinder запрещает неизвестные поля; тело уже проверено Contract
type StrictJSONBinder struct{}

func (StrictJSONBinder) Bind(i interface{}, c echo.Context) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		return bsvc.ErrMalformedPayload
	}
	return nil
}

// idParam разбирает числовой параметр пути; isNumber — контракт number
func idParam(c echo.Context, name string, isNumber func([]byte) bool) (int64, error) {
	raw := c.Param(name)
	if !isNumber([]byte(raw)) {
		return 0, bsvc.ErrMalformedPayload
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, bsvc.ErrMalformedPayload
	}
	return id, nil
}
