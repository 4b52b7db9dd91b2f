package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/vbncursed/vkr/board-service/docs"
	"github.com/vbncursed/vkr/board-service/internal/config"
	"github.com/vbncursed/vkr/board-service/internal/contract"
	"github.com/vbncursed/vkr/board-service/internal/models"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

// Deps — объекты, собранные один раз в main
type Deps struct {
	Service    *bsvc.Service
	Challenges *bsvc.Challenges
	Gate       *bsvc.RoleGate
	Contracts  *contract.Registry
	Store      pinger
	Logger     *slog.Logger
}

func Router(d Deps, cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:        uuid.NewString,
		RequestIDHandler: withRequestID,
	}))
	e.Use(requestLogger(d.Logger))
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Binder = StrictJSONBinder{}
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	// Swagger UI (включается флагом ENABLE_SWAGGER=true)
	if cfg.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	e.GET("/healthz", Healthz)
	e.GET("/readyz", Readyz(d.Store))

	reg := d.Contracts
	body := func(name string) echo.MiddlewareFunc { return Contract(reg.Checker(name)) }
	isNumber := reg.Checker(contract.Number)

	api := e.Group("/api")
	api.GET("/challenge", GetChallenge(d.Challenges))
	api.POST("/challenge", AnswerChallenge(d.Challenges), body(contract.ChallengeAnswer))
	api.GET("/boards", ListBoards(d.Service))
	api.GET("/boards/:name", ListThreads(d.Service))
	api.POST("/boards/:name", CreateThread(d.Service), body(contract.PostUploadWithoutFile))
	api.GET("/boards/:name/:id", GetThread(d.Service, isNumber))
	api.POST("/boards/:name/:id", Reply(d.Service, isNumber), body(contract.PostUploadWithoutFile))

	audit := Audit(d.Logger)
	janitor := RequireRole(d.Gate, models.RoleJanitor)
	moderator := RequireRole(d.Gate, models.RoleModerator)
	developer := RequireRole(d.Gate, models.RoleDeveloper)
	administrator := RequireRole(d.Gate, models.RoleAdministrator)

	admin := e.Group("/admin")
	admin.POST("/login", Login(d.Service), body(contract.LoginForm))
	admin.DELETE("/boards/:name/posts/:id", DeletePost(d.Service, isNumber), janitor, audit)
	admin.PUT("/boards/:name/:id/sticky", SetSticky(d.Service, isNumber), moderator, audit, body(contract.Sticky))
	admin.POST("/boards", CreateBoard(d.Service), developer, audit, body(contract.BoardSetting))
	admin.PUT("/boards/:name", UpdateBoard(d.Service), developer, audit, body(contract.BoardSetting))
	admin.DELETE("/boards/:name", DeleteBoard(d.Service), developer, audit)
	admin.POST("/users", CreateUser(d.Service), administrator, audit, body(contract.User))

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("ip", v.RemoteIP),
			)
			return nil
		},
	})
}
