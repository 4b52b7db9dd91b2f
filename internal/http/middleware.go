package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/board-service/internal/models"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

const identityKey = "identity"

// RequestIDKey — ключ request id в context.Context запроса, для логгера
type RequestIDKey struct{}

// Contract пропускает запрос, только если тело проходит check. Тело
// перечитывается хендлером через c.Bind.
func Contract(check func(raw []byte) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isJSON(c) {
				return bsvc.ErrMalformedPayload
			}
			raw, err := io.ReadAll(c.Request().Body)
			if err != nil {
				// BodyLimit отдает *echo.HTTPError 413
				return err
			}
			if !check(raw) {
				return bsvc.ErrMalformedPayload
			}
			c.Request().Body = io.NopCloser(bytes.NewReader(raw))
			return next(c)
		}
	}
}

// RequireRole — один параметризованный гейт на группу маршрутов
func RequireRole(gate *bsvc.RoleGate, minRole models.Role) echo.MiddlewareFunc {
	gate.MustRank(minRole)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := gate.Authorize(c.Request().Header.Get(echo.HeaderAuthorization), minRole)
			if err != nil {
				return err
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// IdentityFrom — личность, проверенная RequireRole
func IdentityFrom(c echo.Context) (models.Identity, bool) {
	id, ok := c.Get(identityKey).(models.Identity)
	return id, ok
}

// Audit пишет в лог успешные действия персонала с ролью, пропущенной RequireRole
func Audit(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}
			id, ok := IdentityFrom(c)
			if !ok {
				return nil
			}
			logger.InfoContext(c.Request().Context(), "staff action",
				slog.String("role", string(id.Role)),
				slog.String("method", c.Request().Method),
				slog.String("route", c.Path()),
				slog.String("board", c.Param("name")),
			)
			return nil
		}
	}
}

func withRequestID(c echo.Context, id string) {
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), RequestIDKey{}, id)))
}

func isJSON(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == echo.MIMEApplicationJSON
}
