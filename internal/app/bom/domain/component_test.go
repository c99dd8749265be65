package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	qty, _ := NewQuantity(4, 1)

	t.Run("valid edge creation", func(t *testing.T) {
		c, err := NewComponent("c1", "parent", "child", qty, 2, now)
		require.NoError(t, err)

		assert.Equal(t, "parent", c.ParentID())
		assert.Equal(t, "child", c.ChildID())
		assert.True(t, c.Quantity().Equals(qty))
		assert.Equal(t, int64(2), c.Sequence())

		require.Len(t, c.DomainEvents(), 1)
		assert.Equal(t, "component.added", c.DomainEvents()[0].EventType())
	})

	t.Run("self reference rejected", func(t *testing.T) {
		_, err := NewComponent("c1", "same", "same", qty, 0, now)
		assert.ErrorIs(t, err, ErrSelfReference)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := NewComponent("c1", "parent", "child", ZeroQuantity(), 0, now)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		neg, _ := NewQuantity(-1, 2)
		_, err := NewComponent("c1", "parent", "child", neg, 0, now)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("nil quantity rejected", func(t *testing.T) {
		_, err := NewComponent("c1", "parent", "child", nil, 0, now)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestComponent_SetQuantity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	qty, _ := NewQuantity(1, 1)
	c, err := NewComponent("c1", "parent", "child", qty, 0, now)
	require.NoError(t, err)
	c.Changes().Clear()
	c.ClearEvents()

	t.Run("updates and records event", func(t *testing.T) {
		half, _ := NewQuantity(1, 2)
		require.NoError(t, c.SetQuantity(half, now.Add(time.Hour)))

		assert.True(t, c.Quantity().Equals(half))
		assert.Contains(t, c.Changes().DirtyFields(), FieldQuantity)
		require.Len(t, c.DomainEvents(), 1)
		assert.Equal(t, "component.quantity.updated", c.DomainEvents()[0].EventType())
	})

	t.Run("non-positive rejected", func(t *testing.T) {
		assert.ErrorIs(t, c.SetQuantity(ZeroQuantity(), now), ErrInvalidQuantity)
	})
}

func TestComponent_SetSequence(t *testing.T) {
	now := time.Now()
	qty, _ := NewQuantity(1, 1)
	c, _ := NewComponent("c1", "parent", "child", qty, 5, now)
	c.Changes().Clear()

	c.SetSequence(5)
	assert.False(t, c.Changes().HasChanges())

	c.SetSequence(9)
	assert.Equal(t, int64(9), c.Sequence())
	assert.Contains(t, c.Changes().DirtyFields(), FieldSequence)
}
