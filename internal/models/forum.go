package models

import "time"

type Board struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	FilesizeLimit int64  `json:"filesize_limit"`
	Worksafe      bool   `json:"worksafe"`
	BumpLimit     int    `json:"bump_limit"`
}

// Thread — id треда совпадает с id его первого поста
type Thread struct {
	ID       int64 `json:"id"`
	Sticky   bool  `json:"sticky"`
	LastBump int64 `json:"last_bump"`
}

// Post — запись в хранилище. IP никогда не отдается клиенту.
type Post struct {
	ID      int64
	Thread  int64
	Date    int64
	Name    string
	Subject string
	Email   string
	Comment string
	IP      string
}

// AdminUser — учетная запись персонала
type AdminUser struct {
	ID           string
	Ident        string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
}
