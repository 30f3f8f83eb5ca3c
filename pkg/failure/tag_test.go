package failure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credcheck/pkg/failure"
)

func TestTag(t *testing.T) {
	t.Run("passes the value through on ok", func(t *testing.T) {
		got, err := failure.Tag("hello", true, failure.ReasonInvalidEmail)
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("returns the reason and zero value on absence", func(t *testing.T) {
		got, err := failure.Tag("ignored", false, failure.ReasonInvalidEmail)
		assert.Empty(t, got)
		assert.Equal(t, failure.ReasonInvalidEmail, err)
	})
}

func TestTagList(t *testing.T) {
	t.Run("passes the value through on ok", func(t *testing.T) {
		got, err := failure.TagList(42, true, failure.ReasonInvalidPassword)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("returns a one-element list on absence", func(t *testing.T) {
		got, err := failure.TagList(42, false, failure.ReasonInvalidPassword)
		assert.Zero(t, got)
		assert.Equal(t, failure.List{failure.ReasonInvalidPassword}, failure.FromError(err))
	})
}
