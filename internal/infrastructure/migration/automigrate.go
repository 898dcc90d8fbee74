package migration

import (
	"fixdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientModel{},
		&models.TechnicianModel{},
		&models.PrinterModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.PartModel{},
		&models.BudgetModel{},
		&models.LineItemModel{},
		&models.DeliveryModel{},
		&models.ProfileModel{},
	}
}
