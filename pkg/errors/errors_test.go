package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesWrappedAppError(t *testing.T) {
	err := fmt.Errorf("loading cart: %w", NotFound("Product", nil))

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "BAD_REQUEST"))
	assert.False(t, Is(stderrors.New("plain"), "NOT_FOUND"))
}

func TestConstructors(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Internal("Failed to save cart", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "NOT_FOUND: Order not found", NotFound("Order", nil).Error())
	assert.Equal(t, http.StatusBadRequest, Validation("Price is required").Status)
	assert.Contains(t, TooManyRequests("Rate limit exceeded", 2*time.Second).Message, "retry in 3s")
}
