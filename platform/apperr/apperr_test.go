package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Validation("x"), http.StatusBadRequest},
		{BadRequest("x"), http.StatusBadRequest},
		{Conflict("x"), http.StatusConflict},
		{Unavailable("x"), http.StatusServiceUnavailable},
		{TooLarge("x"), http.StatusRequestEntityTooLarge},
		{New(KindBadGateway, "x"), http.StatusBadGateway},
		{Internal("x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), tt.err.Message)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("score lead: %w", Wrap(KindUnavailable, "provider down", cause).WithOp("scoring.Run"))

	assert.True(t, Is(err, KindUnavailable))
	assert.False(t, Is(err, KindNotFound))
	assert.Equal(t, KindUnavailable, GetKind(err))
	assert.ErrorIs(t, err, cause)

	var domainErr *Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "scoring.Run", domainErr.Op)
	assert.Equal(t, KindUnknown, GetKind(cause))
}

func TestWithDetails(t *testing.T) {
	err := BadRequest("bad file").WithDetails(map[string]string{"field": "file"})
	assert.Equal(t, map[string]string{"field": "file"}, err.Details)
}
