package dto

type ChallengeResponse struct {
	Cap   string `json:"cap"`
	Verif string `json:"verif"`
}

type ChallengeAnswerRequest struct {
	Ans   string `json:"ans"`
	Token string `json:"token"`
}

// PostRequest — тело PostUploadWithoutFile; null и отсутствие поля равнозначны
type PostRequest struct {
	Comment   *string `json:"comment"`
	Name      *string `json:"name"`
	Subject   *string `json:"subject"`
	Email     *string `json:"email"`
	Challenge string  `json:"challenge"`
}

type ReplyResponse struct {
	Success bool `json:"success"`
}

type LoginRequest struct {
	Ident string `json:"ident"`
	Pass  string `json:"pass"`
}

type BoardSettingRequest struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	FilesizeLimit int64  `json:"filesize_limit"`
	Worksafe      bool   `json:"worksafe"`
	BumpLimit     int    `json:"bump_limit"`
}

type StickyRequest struct {
	Sticky bool `json:"sticky"`
}

type UserRequest struct {
	Ident string `json:"ident"`
	Pass  string `json:"pass"`
	Role  string `json:"role"`
}

type BoardResponse struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	FilesizeLimit int64  `json:"filesize_limit"`
	Worksafe      bool   `json:"worksafe"`
	BumpLimit     int    `json:"bump_limit"`
}

type ThreadResponse struct {
	ID       int64 `json:"id"`
	Sticky   bool  `json:"sticky"`
	LastBump int64 `json:"last_bump"`
}

type PostResponse struct {
	ID      int64  `json:"id"`
	Date    int64  `json:"date"`
	Name    string `json:"name,omitempty"`
	Trip    string `json:"trip,omitempty"`
	Subject string `json:"subject,omitempty"`
	Email   string `json:"email,omitempty"`
	Comment string `json:"comment,omitempty"`
}
