package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("production config", func(t *testing.T) {
		t.Setenv("FUNDSIGNAL_ENV", "")
		require.NotNil(t, New())
	})

	t.Run("dev config", func(t *testing.T) {
		t.Setenv("FUNDSIGNAL_ENV", "dev")
		require.NotNil(t, New())
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns the attached logger", func(t *testing.T) {
		attached := New()
		ctx := context.WithValue(context.Background(), ContextKey, attached)

		require.Same(t, attached, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger when none attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
