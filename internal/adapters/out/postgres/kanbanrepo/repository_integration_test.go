package kanbanrepo_test

import (
	"context"
	"testing"

	"furniture/internal/adapters/out/postgres/kanbanrepo"
	"furniture/internal/adapters/out/postgres/pgtest"
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type KanbanColumnRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *kanbanrepo.GormKanbanColumnRepository
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = kanbanrepo.NewGormKanbanColumnRepository(suite.database.DB)
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TestAdd_ThenGet_KeepsStatusBinding() {
	ctx := context.Background()
	status := order.InProduction
	column := suite.newColumn("Workshop", 1, &status)
	suite.Require().NoError(suite.repository.Add(ctx, column))

	stored, err := suite.repository.Get(ctx, column.ID())

	suite.Require().NoError(err)
	suite.Equal("Workshop", stored.Name())
	suite.Equal(1, stored.Position())
	suite.Require().NotNil(stored.Status())
	suite.Equal(order.InProduction, *stored.Status())
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TestAdd_DuplicatePosition_ReturnsInvalidValue() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newColumn("Backlog", 0, nil)))

	err := suite.repository.Add(ctx, suite.newColumn("Other", 0, nil))

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TestAdd_DuplicateStatus_ReturnsInvalidValue() {
	ctx := context.Background()
	status := order.Ready
	suite.Require().NoError(suite.repository.Add(ctx, suite.newColumn("Ready", 0, &status)))

	err := suite.repository.Add(ctx, suite.newColumn("Also ready", 1, &status))

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TestAdd_ManyUnbound_Succeeds() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newColumn("A", 0, nil)))
	suite.NoError(suite.repository.Add(ctx, suite.newColumn("B", 1, nil)))
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TestGetAll_OrderedByPosition() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newColumn("Done", 5, nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newColumn("Backlog", 0, nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newColumn("Doing", 2, nil)))

	columns, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(columns, 3)
	suite.Equal("Backlog", columns[0].Name())
	suite.Equal("Doing", columns[1].Name())
	suite.Equal("Done", columns[2].Name())
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	column := suite.newColumn("Backlog", 0, nil)
	suite.Require().NoError(suite.repository.Add(ctx, column))

	suite.Require().NoError(suite.repository.Delete(ctx, column.ID()))

	_, err := suite.repository.Get(ctx, column.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Delete(ctx, column.ID()), errs.ErrObjectNotFound)
}

func (suite *KanbanColumnRepositoryIntegrationTestSuite) newColumn(name string, position int, status *order.Status) *kanban.Column {
	column, err := kanban.NewColumn(kernel.NewUUID(), name, position, status)
	suite.Require().NoError(err)
	return column
}

func TestKanbanColumnRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KanbanColumnRepositoryIntegrationTestSuite))
}
