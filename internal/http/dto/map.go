package dto

import (
	"github.com/vbncursed/vkr/board-service/internal/models"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

// ToCommand преобразует PostRequest в команду use case
func (r PostRequest) ToCommand() bsvc.PostCommand {
	return bsvc.PostCommand{
		Comment:   deref(r.Comment),
		Name:      deref(r.Name),
		Subject:   deref(r.Subject),
		Email:     deref(r.Email),
		Challenge: r.Challenge,
	}
}

func (r LoginRequest) ToCommand() bsvc.LoginCommand {
	return bsvc.LoginCommand{Ident: r.Ident, Pass: r.Pass}
}

func (r UserRequest) ToCommand() bsvc.NewUserCommand {
	return bsvc.NewUserCommand{Ident: r.Ident, Pass: r.Pass, Role: models.Role(r.Role)}
}

func (r BoardSettingRequest) ToModel() models.Board {
	return models.Board{
		Name:          r.Name,
		Title:         r.Title,
		FilesizeLimit: r.FilesizeLimit,
		Worksafe:      r.Worksafe,
		BumpLimit:     r.BumpLimit,
	}
}

func FromChallenge(c models.Challenge) ChallengeResponse {
	return ChallengeResponse{Cap: c.Cap, Verif: c.Verif}
}

func FromBoards(bs []models.Board) []BoardResponse {
	out := make([]BoardResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, BoardResponse(b))
	}
	return out
}

func FromThreads(ts []models.Thread) []ThreadResponse {
	out := make([]ThreadResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, ThreadResponse(t))
	}
	return out
}

func FromPosts(ps []bsvc.PublicPost) []PostResponse {
	out := make([]PostResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PostResponse(p))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
