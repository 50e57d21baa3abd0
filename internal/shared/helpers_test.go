package shared

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusErrorWithBody(t *testing.T) {
	err := HTTPStatusErrorWithBody(503, "https://meta.example/v2/versions/game", "maintenance")
	assert.EqualError(t, err, "status=503 url=https://meta.example/v2/versions/game response=maintenance")

	err = HTTPStatusErrorWithBody(404, "https://meta.example/x", "  ")
	assert.EqualError(t, err, "status=404 url=https://meta.example/x")
}

func TestDisplayOr(t *testing.T) {
	assert.Equal(t, "MIT", DisplayOr("MIT", "none"))
	assert.Equal(t, "none", DisplayOr(" ", "none"))
}

func TestErrorMessage(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("Author may not be blank")
	assert.Equal(t, "Author may not be blank", ErrorMessage(err))
	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))
}
