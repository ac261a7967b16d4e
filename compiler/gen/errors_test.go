package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("MaxDepth", -1, "must be positive")

		assert.Contains(t, err.Error(), "jgd: config error")
		assert.Contains(t, err.Error(), "MaxDepth")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Registry", nil, "registry cannot be nil")
		assert.Equal(t, `jgd: config error for "Registry": registry cannot be nil`, err.Error())
	})

	t.Run("Is matches ErrInvalidConfig", func(t *testing.T) {
		err := NewConfigError("Locale", "", "empty")
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		err := NewConfigError("Locale", "", "empty")
		assert.True(t, IsConfigError(fmt.Errorf("wrap: %w", err)))
		assert.False(t, IsConfigError(errors.New("other")))
		assert.False(t, IsConfigError(nil))
	})
}
