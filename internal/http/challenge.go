package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vbncursed/vkr/board-service/internal/http/dto"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

// GetChallenge — выдача капчи
// @Summary     Выдать капчу
// @Tags        challenge
// @Produce     json
// @Success     200 {object} dto.ChallengeResponse
// @Failure     500 {object} APIError
// @Router      /api/challenge [get]
func GetChallenge(ch *bsvc.Challenges) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := ch.Issue(c.Request().Context(), c.RealIP())
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, dto.FromChallenge(res))
	}
}

// AnswerChallenge — ответ на капчу, в ответ токен разрешения на постинг
// @Summary     Ответить на капчу
// @Tags        challenge
// @Accept      json
// @Produce     json
// @Param       request body dto.ChallengeAnswerRequest true "Answer"
// @Success     200 {string} string "posting token"
// @Failure     400 {object} APIError
// @Router      /api/challenge [post]
func AnswerChallenge(ch *bsvc.Challenges) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ChallengeAnswerRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		grant, err := ch.Answer(c.RealIP(), req.Ans, req.Token)
		if err != nil {
			return err
		}
		return writeJSON(c, http.StatusOK, grant)
	}
}
