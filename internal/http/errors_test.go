package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	bh "github.com/vbncursed/vkr/board-service/internal/http"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

func TestMapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err    error
		status int
		reason string
	}{
		{bsvc.ErrMalformedPayload, http.StatusBadRequest, "Malformed data"},
		{bsvc.ErrAuthExpired, http.StatusForbidden, "Not authorized"},
		{bsvc.ErrTooFast, http.StatusTooManyRequests, "You're posting too fast."},
		{fmt.Errorf("insert thread: %w", bsvc.ErrPostIDTaken), http.StatusConflict, "Post number taken, try again"},
		{bsvc.ErrPostNotFound, http.StatusNotFound, "No such post"},
		{errors.Join(bsvc.ErrStorageUnavailable, errors.New("dial tcp")), http.StatusInternalServerError, "Internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, body := bh.MapError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.reason, body.Reason)
		})
	}
}
