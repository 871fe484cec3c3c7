package kanban_test

import (
	"testing"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumn(t *testing.T) {
	t.Run("should create bound column", func(t *testing.T) {
		status := order.InProduction

		c, err := kanban.NewColumn(kernel.NewUUID(), " Workshop ", 2, &status)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Workshop", c.Name())
		assert.Equal(t, 2, c.Position())
		require.NotNil(t, c.Status())
		assert.Equal(t, order.InProduction, *c.Status())
	})

	t.Run("should create unbound column", func(t *testing.T) {
		c, err := kanban.NewColumn(kernel.NewUUID(), "Backlog", 0, nil)

		require.NoError(t, err)
		assert.Nil(t, c.Status())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		bad := order.Status(77)

		c, err := kanban.NewColumn(kernel.UUID{}, "", -1, &bad)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "column name")
		assert.Contains(t, err.Error(), "column position is invalid")
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var c *kanban.Column

		assert.Equal(t, kanban.ErrColumnIsNotConstructed, c.Validate())
	})
}
