package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/board-service/internal/http/dto"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

// ListBoards — список досок
// @Summary     Список досок
// @Tags        boards
// @Produce     json
// @Success     200 {array} dto.BoardResponse
// @Router      /api/boards [get]
func ListBoards(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		bs, err := svc.ListBoards(c.Request().Context())
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, dto.FromBoards(bs))
	}
}

// ListThreads — треды доски
// @Summary     Треды доски
// @Tags        boards
// @Produce     json
// @Param       name path string true "Board"
// @Success     200 {array} dto.ThreadResponse
// @Failure     404 {object} APIError
// @Router      /api/boards/{name} [get]
func ListThreads(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ts, err := svc.ListThreads(c.Request().Context(), c.Param("name"))
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, dto.FromThreads(ts))
	}
}

// GetThread — посты треда
// @Summary     Посты треда
// @Tags        boards
// @Produce     json
// @Param       name path string true "Board"
// @Param       id path int true "Thread"
// @Success     200 {array} dto.PostResponse
// @Failure     400 {object} APIError
// @Failure     404 {object} APIError
// @Router      /api/boards/{name}/{id} [get]
func GetThread(svc *bsvc.Service, isNumber func([]byte) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c, "id", isNumber)
		if err != nil {
			return err
		}
		ps, err := svc.GetThread(c.Request().Context(), c.Param("name"), id)
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, dto.FromPosts(ps))
	}
}

// CreateThread — новый тред
// @Summary     Создать тред
// @Tags        boards
// @Accept      json
// @Produce     json
// @Param       name path string true "Board"
// @Param       request body dto.PostRequest true "Post"
// @Success     200 {integer} int64 "thread id"
// @Failure     400 {object} APIError
// @Failure     404 {object} APIError
// @Failure     409 {object} APIError
// @Failure     429 {object} APIError
// @Router      /api/boards/{name} [post]
func CreateThread(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.PostRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		id, err := svc.CreateThread(c.Request().Context(), c.Param("name"), req.ToCommand(), c.RealIP())
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, id)
	}
}

// Reply — ответ в тред
// @Summary     Ответить в тред
// @Tags        boards
// @Accept      json
// @Produce     json
// @Param       name path string true "Board"
// @Param       id path int true "Thread"
// @Param       request body dto.PostRequest true "Post"
// @Success     200 {object} dto.ReplyResponse
// @Failure     400 {object} APIError
// @Failure     404 {object} APIError
// @Failure     429 {object} APIError
// @Router      /api/boards/{name}/{id} [post]
func Reply(svc *bsvc.Service, isNumber func([]byte) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		thread, err := idParam(c, "id", isNumber)
		if err != nil {
			return err
		}
		var req dto.PostRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := svc.Reply(c.Request().Context(), c.Param("name"), thread, req.ToCommand(), c.RealIP()); err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, dto.ReplyResponse{Success: true})
	}
}
