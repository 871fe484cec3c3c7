package productionrepo_test

import (
	"context"
	"testing"
	"time"

	"furniture/internal/adapters/out/postgres/pgtest"
	"furniture/internal/adapters/out/postgres/productionrepo"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ProductionOperationRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *productionrepo.GormProductionOperationRepository
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = productionrepo.NewGormProductionOperationRepository(suite.database.DB)
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TestAdd_ThenFindActive() {
	ctx := context.Background()
	op := suite.newOperation(kernel.NewUUID(), kernel.NewUUID(), production.Produce)
	suite.Require().NoError(suite.repository.Add(ctx, op))

	found, err := suite.repository.FindActive(ctx, op.OrderID(), production.Produce, op.EpisodeID())

	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(op.ID()))
	suite.Equal(production.StageDesign, found.Stage())
	suite.Equal(production.Pending, found.Status())
	suite.WithinDuration(op.CreatedAt(), found.CreatedAt(), time.Millisecond)
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TestAdd_SameEpisodeTwice_ReturnsInvalidValue() {
	ctx := context.Background()
	orderID, episodeID := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOperation(orderID, episodeID, production.Produce)))

	err := suite.repository.Add(ctx, suite.newOperation(orderID, episodeID, production.Produce))

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
	ops, listErr := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(listErr)
	suite.Len(ops, 1)
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TestAdd_SameEpisodeOtherType_Succeeds() {
	ctx := context.Background()
	orderID, episodeID := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOperation(orderID, episodeID, production.Produce)))

	suite.NoError(suite.repository.Add(ctx, suite.newOperation(orderID, episodeID, production.Purchase)))
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TestFindActive_OtherEpisode_ReturnsNotFound() {
	ctx := context.Background()
	op := suite.newOperation(kernel.NewUUID(), kernel.NewUUID(), production.Produce)
	suite.Require().NoError(suite.repository.Add(ctx, op))

	_, err := suite.repository.FindActive(ctx, op.OrderID(), production.Produce, kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TestFindActive_CompletedOperation_ReturnsNotFound() {
	ctx := context.Background()
	op := suite.newOperation(kernel.NewUUID(), kernel.NewUUID(), production.Produce)
	suite.Require().NoError(suite.repository.Add(ctx, op))
	suite.Require().NoError(suite.database.DB.
		Model(&productionrepo.ProductionOperationDTO{}).
		Where("id = ?", op.ID().Bytes()).
		Update("status", production.Completed.String()).Error)

	_, err := suite.repository.FindActive(ctx, op.OrderID(), production.Produce, op.EpisodeID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) TestGetAllByOrder_OldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := suite.newOperation(orderID, kernel.NewUUID(), production.Produce)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := suite.newOperation(orderID, kernel.NewUUID(), production.Produce)
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOperation(kernel.NewUUID(), kernel.NewUUID(), production.Produce)))

	ops, err := suite.repository.GetAllByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Require().Len(ops, 2)
	suite.True(ops[0].ID().IsEqual(first.ID()))
	suite.True(ops[1].ID().IsEqual(second.ID()))
}

func (suite *ProductionOperationRepositoryIntegrationTestSuite) newOperation(
	orderID, episodeID kernel.UUID,
	operationType production.OperationType,
) *production.Operation {
	op, err := production.NewOperation(kernel.NewUUID(), orderID, episodeID, operationType, production.StageDesign)
	suite.Require().NoError(err)
	return op
}

func TestProductionOperationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProductionOperationRepositoryIntegrationTestSuite))
}
