package commands_test

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/keyed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contiguous(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func seedLane(board *memoryBoard, column *kanban.Column, n int) []kernel.UUID {
	ids := make([]kernel.UUID, n)
	for i := range ids {
		ids[i] = kernel.NewUUID()
		columnID := column.ID()
		board.addOrder(ids[i], &columnID, i)
	}
	return ids
}

func move(t *testing.T, h commands.MoveOrderOnKanbanCommandHandler, orderID, columnID kernel.UUID, pos int) int {
	t.Helper()
	cmd, err := commands.NewMoveOrderOnKanbanCommand(orderID, columnID, pos)
	require.NoError(t, err)
	res, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return res.Position
}

func TestMoveOrderOnKanbanCommandHandler_TwoStepScenario(t *testing.T) {
	board := newMemoryBoard()
	columnA := newColumn(t, "Design", 0, nil)
	columnB := newColumn(t, "Workshop", 1, nil)
	board.addColumn(columnA)
	board.addColumn(columnB)

	laneA := seedLane(board, columnA, 2)
	laneB := seedLane(board, columnB, 3)
	order5 := kernel.NewUUID()
	board.addOrder(order5, nil, 0)

	h := commands.NewMoveOrderOnKanbanCommandHandler(board, &keyed.Mutex[string]{})

	assert.Equal(t, 0, move(t, h, order5, columnA.ID(), 0))
	assert.Equal(t, []kernel.UUID{order5, laneA[0], laneA[1]}, board.lane(columnA.ID()))
	assert.Equal(t, contiguous(3), board.positions(columnA.ID()))

	assert.Equal(t, 2, move(t, h, order5, columnB.ID(), 2))
	assert.Equal(t, laneA, board.lane(columnA.ID()))
	assert.Equal(t, contiguous(2), board.positions(columnA.ID()))
	assert.Equal(t, []kernel.UUID{laneB[0], laneB[1], order5, laneB[2]}, board.lane(columnB.ID()))
	assert.Equal(t, contiguous(4), board.positions(columnB.ID()))
}

func TestMoveOrderOnKanbanCommandHandler_WithinColumnAndClamping(t *testing.T) {
	board := newMemoryBoard()
	column := newColumn(t, "Assembly", 0, nil)
	board.addColumn(column)
	ids := seedLane(board, column, 4)

	h := commands.NewMoveOrderOnKanbanCommandHandler(board, &keyed.Mutex[string]{})

	assert.Equal(t, 3, move(t, h, ids[0], column.ID(), 99))
	assert.Equal(t, []kernel.UUID{ids[1], ids[2], ids[3], ids[0]}, board.lane(column.ID()))

	assert.Equal(t, 0, move(t, h, ids[0], column.ID(), -3))
	assert.Equal(t, ids, board.lane(column.ID()))
	assert.Equal(t, contiguous(4), board.positions(column.ID()))
}

func TestMoveOrderOnKanbanCommandHandler_Errors(t *testing.T) {
	board := newMemoryBoard()
	column := newColumn(t, "Assembly", 0, nil)
	board.addColumn(column)
	ids := seedLane(board, column, 1)
	h := commands.NewMoveOrderOnKanbanCommandHandler(board, &keyed.Mutex[string]{})

	cmd, err := commands.NewMoveOrderOnKanbanCommand(ids[0], kernel.NewUUID(), 0)
	require.NoError(t, err)
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, ids, board.lane(column.ID()), "a failed move leaves the source untouched")

	cmd, err = commands.NewMoveOrderOnKanbanCommand(kernel.NewUUID(), column.ID(), 0)
	require.NoError(t, err)
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = h.Handle(t.Context(), commands.MoveOrderOnKanbanCommand{})
	require.ErrorIs(t, err, commands.ErrMoveOrderOnKanbanCommandIsNotConstructed)
}

func TestMoveOrderOnKanbanCommandHandler_ConcurrentMovesKeepColumnsContiguous(t *testing.T) {
	board := newMemoryBoard()
	columns := []*kanban.Column{
		newColumn(t, "Design", 0, nil),
		newColumn(t, "Workshop", 1, nil),
		newColumn(t, "Finishing", 2, nil),
	}
	var orders []kernel.UUID
	for _, c := range columns {
		board.addColumn(c)
		orders = append(orders, seedLane(board, c, 5)...)
	}

	h := commands.NewMoveOrderOnKanbanCommandHandler(board, &keyed.Mutex[string]{})

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(uint64(w), 42))
			for range 25 {
				cmd, err := commands.NewMoveOrderOnKanbanCommand(
					orders[rng.IntN(len(orders))],
					columns[rng.IntN(len(columns))].ID(),
					rng.IntN(20)-5,
				)
				if err != nil {
					t.Error(err)
					return
				}
				// an order relocated repeatedly by other workers may report busy
				if _, err = h.Handle(t.Context(), cmd); err != nil && !errors.Is(err, errs.ErrBusy) {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, c := range columns {
		n := len(board.lane(c.ID()))
		total += n
		assert.Equal(t, contiguous(n), board.positions(c.ID()), "column %s", c.Name())
	}
	assert.Equal(t, len(orders), total)
}

func TestRenumberKanbanColumnCommandHandler_Handle(t *testing.T) {
	board := newMemoryBoard()
	column := newColumn(t, "Packaging", 0, nil)
	board.addColumn(column)
	columnID := column.ID()
	first, second, third := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	board.addOrder(first, &columnID, 0)
	board.addOrder(second, &columnID, 5)
	board.addOrder(third, &columnID, 9)

	h := commands.NewRenumberKanbanColumnCommandHandler(board, &keyed.Mutex[string]{})
	cmd, err := commands.NewRenumberKanbanColumnCommand(columnID)
	require.NoError(t, err)

	n, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []kernel.UUID{first, second, third}, board.lane(columnID))
	assert.Equal(t, contiguous(3), board.positions(columnID))

	missing, err := commands.NewRenumberKanbanColumnCommand(kernel.NewUUID())
	require.NoError(t, err)
	_, err = h.Handle(t.Context(), missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateKanbanColumnCommandHandler_Handle(t *testing.T) {
	board := newMemoryBoard()
	h := commands.NewCreateKanbanColumnCommandHandler(board)

	cmd, err := commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), "In production", 0, "in_production")
	require.NoError(t, err)
	created, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	require.NotNil(t, created.Status())
	assert.Equal(t, order.InProduction, *created.Status())

	samePosition, err := commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), "Backlog", 0, "")
	require.NoError(t, err)
	_, err = h.Handle(t.Context(), samePosition)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	sameStatus, err := commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), "Shop floor", 1, "in_production")
	require.NoError(t, err)
	_, err = h.Handle(t.Context(), sameStatus)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	unbound, err := commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), "Backlog", 1, "")
	require.NoError(t, err)
	created, err = h.Handle(t.Context(), unbound)
	require.NoError(t, err)
	assert.Nil(t, created.Status())

	_, err = commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), "Limbo", 2, "archived")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))

	_, err = h.Handle(t.Context(), mustColumnCommand(t, "", 3))
	require.Error(t, err)
	assert.True(t, errs.IsInvalidArgument(err))
}

func mustColumnCommand(t *testing.T, name string, position int) commands.CreateKanbanColumnCommand {
	t.Helper()
	cmd, err := commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), name, position, "")
	require.NoError(t, err)
	return cmd
}

func TestDeleteKanbanColumnCommandHandler_Handle(t *testing.T) {
	board := newMemoryBoard()
	busy := newColumn(t, "Assembly", 0, nil)
	empty := newColumn(t, "Spare", 1, nil)
	board.addColumn(busy)
	board.addColumn(empty)
	seedLane(board, busy, 2)

	h := commands.NewDeleteKanbanColumnCommandHandler(board, &keyed.Mutex[string]{})

	cmd, err := commands.NewDeleteKanbanColumnCommand(busy.ID())
	require.NoError(t, err)
	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectInUse)

	var inUse *errs.ObjectInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(2), inUse.References)

	cmd, err = commands.NewDeleteKanbanColumnCommand(empty.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(t.Context(), cmd))

	err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStatusColumnPlacer_PlaceForStatus(t *testing.T) {
	board := newMemoryBoard()
	ready := order.Ready
	readyColumn := newColumn(t, "Ready to ship", 0, &ready)
	other := newColumn(t, "Workshop", 1, nil)
	board.addColumn(readyColumn)
	board.addColumn(other)
	existing := seedLane(board, readyColumn, 2)
	otherID := other.ID()
	orderID := kernel.NewUUID()
	board.addOrder(orderID, &otherID, 0)

	columns := &keyed.Mutex[string]{}
	placer := commands.NewStatusColumnPlacer(board, commands.NewMoveOrderOnKanbanCommandHandler(board, columns))

	require.NoError(t, placer.PlaceForStatus(t.Context(), orderID, order.Ready))
	assert.Equal(t, []kernel.UUID{existing[0], existing[1], orderID}, board.lane(readyColumn.ID()))
	assert.Empty(t, board.lane(otherID))

	// already in the bound column: position is kept
	require.NoError(t, placer.PlaceForStatus(t.Context(), existing[0], order.Ready))
	assert.Equal(t, []kernel.UUID{existing[0], existing[1], orderID}, board.lane(readyColumn.ID()))

	// no column bound to shipped
	require.NoError(t, placer.PlaceForStatus(t.Context(), orderID, order.Shipped))
	assert.Equal(t, 3, len(board.lane(readyColumn.ID())))
}
