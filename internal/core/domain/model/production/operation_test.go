package production_test

import (
	"testing"
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperation(t *testing.T) {
	orderID := kernel.NewUUID()
	episodeID := kernel.NewUUID()

	t.Run("should create pending operation", func(t *testing.T) {
		op, err := production.NewOperation(kernel.NewUUID(), orderID, episodeID, production.Produce, production.StageDesign)

		require.NoError(t, err)
		require.NoError(t, op.Validate())
		assert.Equal(t, production.Pending, op.Status())
		assert.Equal(t, production.Produce, op.Type())
		assert.Equal(t, production.StageDesign, op.Stage())
		assert.True(t, op.OrderID().IsEqual(orderID))
		assert.True(t, op.EpisodeID().IsEqual(episodeID))
	})

	t.Run("should reject unknown type and stage as invalid arguments", func(t *testing.T) {
		op, err := production.NewOperation(kernel.NewUUID(), orderID, episodeID, "weld", "paint")

		require.Error(t, err)
		assert.Nil(t, op)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "operation type is invalid")
		assert.Contains(t, err.Error(), "production stage is invalid")
	})

	t.Run("should require order and episode", func(t *testing.T) {
		_, err := production.NewOperation(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, production.Produce,
			production.StageDesign)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id")
	})
}

func TestRestoreOperation(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	op, err := production.RestoreOperation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		production.Purchase, production.StageProcurement, production.Completed, createdAt)

	require.NoError(t, err)
	assert.Equal(t, production.Completed, op.Status())
	assert.Equal(t, createdAt, op.CreatedAt())

	_, err = production.RestoreOperation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		production.Purchase, production.StageProcurement, "archived", createdAt)
	require.Error(t, err)
}

func TestOperation_Matches(t *testing.T) {
	orderID := kernel.NewUUID()
	episodeID := kernel.NewUUID()
	op, _ := production.NewOperation(kernel.NewUUID(), orderID, episodeID, production.Produce, production.StageDesign)

	assert.True(t, op.Matches(orderID, production.Produce, episodeID))
	assert.False(t, op.Matches(orderID, production.Purchase, episodeID))
	assert.False(t, op.Matches(orderID, production.Produce, kernel.NewUUID()))
	assert.False(t, op.Matches(kernel.NewUUID(), production.Produce, episodeID))

	done, _ := production.RestoreOperation(op.ID(), orderID, episodeID, production.Produce, production.StageDesign,
		production.Completed, op.CreatedAt())
	assert.False(t, done.Matches(orderID, production.Produce, episodeID))
}

func TestFromString(t *testing.T) {
	typ, err := production.OperationTypeFromString("purchase_and_produce")
	require.NoError(t, err)
	assert.Equal(t, production.PurchaseAndProduce, typ)

	_, err = production.OperationTypeFromString("build")
	assert.True(t, errs.IsInvalidArgument(err))

	st, err := production.StatusFromString("in_progress")
	require.NoError(t, err)
	assert.True(t, st.IsActive())
	assert.False(t, production.Completed.IsActive())

	stage, err := production.StageFromString("quality_check")
	require.NoError(t, err)
	assert.Equal(t, production.StageQualityCheck, stage)

	_, err = production.StageFromString("")
	assert.True(t, errs.IsInvalidArgument(err))
}
