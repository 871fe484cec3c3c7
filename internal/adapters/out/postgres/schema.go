package postgres

import (
	"furniture/internal/adapters/out/postgres/kanbanrepo"
	"furniture/internal/adapters/out/postgres/orderrepo"
	"furniture/internal/adapters/out/postgres/productionrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the adapters, in truncation-safe order.
var Tables = []string{"production_operations", "orders", "kanban_columns"}

// Migrate creates or updates the schema for all repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&kanbanrepo.KanbanColumnDTO{},
		&orderrepo.OrderDTO{},
		&productionrepo.ProductionOperationDTO{},
	)
}
