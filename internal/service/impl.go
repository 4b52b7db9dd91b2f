package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"time"

	"github.com/dchest/captcha"
)

// RealClock — продовая реализация Clock
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// CaptchaRenderer — PuzzleRenderer поверх github.com/dchest/captcha: PNG с цифрами в data URL
type CaptchaRenderer struct {
	Digits        int
	Width, Height int
}

// NewCaptchaRenderer — параметры по умолчанию под размер формы фронтенда
func NewCaptchaRenderer() CaptchaRenderer {
	return CaptchaRenderer{Digits: 6, Width: 346, Height: 72}
}

func (r CaptchaRenderer) Render(_ context.Context) (Puzzle, error) {
	digits := captcha.RandomDigits(r.Digits)
	var buf bytes.Buffer
	if _, err := captcha.NewImage("", digits, r.Width, r.Height).WriteTo(&buf); err != nil {
		return Puzzle{}, err
	}
	solution := make([]byte, len(digits))
	for i, d := range digits {
		solution[i] = '0' + d
	}
	return Puzzle{
		Image:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Solution: string(solution),
	}, nil
}
