package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/board-service/internal/http/dto"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

// Login — вход персонала
// @Summary     Вход персонала
// @Description Первый вход при пустом списке персонала создает администратора.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "Credentials"
// @Success     200 {string} string "session token"
// @Failure     400 {object} APIError
// @Failure     401 {object} APIError
// @Router      /admin/login [post]
func Login(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		tok, err := svc.Login(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization), req.ToCommand())
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, tok)
	}
}

// DeletePost — удалить пост (janitor)
// @Summary     Удалить пост
// @Tags        admin
// @Security    Bearer
// @Param       name path string true "Board"
// @Param       id path int true "Post"
// @Success     204
// @Failure     403 {object} APIError
// @Failure     404 {object} APIError
// @Router      /admin/boards/{name}/posts/{id} [delete]
func DeletePost(svc *bsvc.Service, isNumber func([]byte) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := idParam(c, "id", isNumber)
		if err != nil {
			return err
		}
		if err := svc.DeletePost(c.Request().Context(), c.Param("name"), id); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// SetSticky — закрепить тред (moderator)
// @Summary     Закрепить тред
// @Tags        admin
// @Security    Bearer
// @Accept      json
// @Param       name path string true "Board"
// @Param       id path int true "Thread"
// @Param       request body dto.StickyRequest true "Sticky"
// @Success     204
// @Failure     403 {object} APIError
// @Failure     404 {object} APIError
// @Router      /admin/boards/{name}/{id}/sticky [put]
func SetSticky(svc *bsvc.Service, isNumber func([]byte) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		thread, err := idParam(c, "id", isNumber)
		if err != nil {
			return err
		}
		var req dto.StickyRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := svc.SetSticky(c.Request().Context(), c.Param("name"), thread, req.Sticky); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// CreateBoard — новая доска (developer)
// @Summary     Создать доску
// @Tags        admin
// @Security    Bearer
// @Accept      json
// @Param       request body dto.BoardSettingRequest true "Board"
// @Success     201
// @Failure     403 {object} APIError
// @Failure     409 {object} APIError
// @Router      /admin/boards [post]
func CreateBoard(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.BoardSettingRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := svc.CreateBoard(c.Request().Context(), req.ToModel()); err != nil {
			return err
		}
		return c.NoContent(http.StatusCreated)
	}
}

// UpdateBoard — настройки доски (developer), имя из пути
// @Summary     Изменить доску
// @Tags        admin
// @Security    Bearer
// @Accept      json
// @Param       name path string true "Board"
// @Param       request body dto.BoardSettingRequest true "Board"
// @Success     204
// @Failure     403 {object} APIError
// @Failure     404 {object} APIError
// @Router      /admin/boards/{name} [put]
func UpdateBoard(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.BoardSettingRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := svc.UpdateBoard(c.Request().Context(), c.Param("name"), req.ToModel()); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteBoard — удалить доску (developer)
// @Summary     Удалить доску
// @Tags        admin
// @Security    Bearer
// @Param       name path string true "Board"
// @Success     204
// @Failure     403 {object} APIError
// @Failure     404 {object} APIError
// @Router      /admin/boards/{name} [delete]
func DeleteBoard(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.DeleteBoard(c.Request().Context(), c.Param("name")); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// CreateUser — учетная запись персонала (administrator)
// @Summary     Создать учетную запись
// @Tags        admin
// @Security    Bearer
// @Accept      json
// @Param       request body dto.UserRequest true "User"
// @Success     201
// @Failure     400 {object} APIError
// @Failure     403 {object} APIError
// @Failure     409 {object} APIError
// @Router      /admin/users [post]
func CreateUser(svc *bsvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.UserRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := svc.CreateUser(c.Request().Context(), req.ToCommand()); err != nil {
			return err
		}
		return c.NoContent(http.StatusCreated)
	}
}
