package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

// APIError — единственная форма ошибки на проводе
type APIError struct {
	Reason string `json:"reason"`
}

func writeJSON(c echo.Context, status int, v any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(status, v)
}

// NewHTTPErrorHandler пишет {reason} и логирует конкретный вид ошибки; стек клиенту не уходит
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		ctx := c.Request().Context()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			reason := http.StatusText(he.Code)
			if msg, ok := he.Message.(string); ok && msg != "" {
				reason = msg
			}
			logger.DebugContext(ctx, "http error", slog.Int("status", he.Code), slog.String("path", c.Path()))
			_ = writeJSON(c, he.Code, APIError{Reason: reason})
			return
		}

		status, body := MapError(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed", slog.String("path", c.Path()), slog.Any("err", err))
		} else {
			logger.WarnContext(ctx, "request rejected",
				slog.String("path", c.Path()),
				slog.String("kind", err.Error()),
				slog.String("ip", c.RealIP()),
			)
		}

		var ce *bsvc.CadenceError
		if errors.As(err, &ce) {
			c.Response().Header().Set("Retry-After", strconv.FormatInt(retrySeconds(ce), 10))
		}
		_ = writeJSON(c, status, body)
	}
}

// retrySeconds округляет вверх: 1 ms до конца интервала дает 1 секунду
func retrySeconds(ce *bsvc.CadenceError) int64 {
	ms := ce.RetryAfter.Milliseconds()
	return max((ms+999)/1000, 1)
}
