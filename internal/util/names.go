package util

import (
	"crypto/sha256"
	"encoding/base64"
	"regexp"
	"strings"
)

// SplitTripcode разбирает "имя#секрет" в отображаемое имя и трипкод.
// Больше одного '#' — имя не показывается вовсе.
func SplitTripcode(name string) (display, trip string) {
	parts := strings.Split(name, "#")
	switch len(parts) {
	case 1:
		return parts[0], ""
	case 2:
		return parts[0], Tripcode(parts[1])
	}
	return "", ""
}

// Tripcode — "!" + первые 10 символов base64(sha256(секрет))
func Tripcode(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return "!" + base64.StdEncoding.EncodeToString(sum[:])[:10]
}

var newlineRuns = regexp.MustCompile(`[\r\n]{2,}`)

// CollapseNewlines заменяет серии CR/LF длиной от двух одним "\n"
func CollapseNewlines(s string) string {
	return newlineRuns.ReplaceAllString(s, "\n")
}

// Truncate обрезает строку до n рун
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
