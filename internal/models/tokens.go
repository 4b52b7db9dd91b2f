package models

// Identity — payload сессионного токена. Expiration — unix ms.
type Identity struct {
	Role       Role  `json:"role"`
	Expiration int64 `json:"expiration"`
}

// ChallengeVerif — вложенный токен капчи: кому выдана, до какого момента, зашифрованный ответ
type ChallengeVerif struct {
	For string `json:"for"`
	Exp int64  `json:"exp"`
	RA  string `json:"ra"`
}

// PostingGrant — разрешение на постинг после решения капчи
type PostingGrant struct {
	For string `json:"for"`
	Exp int64  `json:"exp"`
}

// Challenge — то, что уходит клиенту на GET /challenge
type Challenge struct {
	Cap   string `json:"cap"`
	Verif string `json:"verif"`
}
