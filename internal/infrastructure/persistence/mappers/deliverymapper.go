package mappers

import (
	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/infrastructure/persistence/models"
)

// DeliveryMapper handles the conversion between Delivery domain entities and persistence models.
type DeliveryMapper interface {
	ToModel(d *delivery.Delivery) *models.DeliveryModel
	ToDomain(model *models.DeliveryModel) (*delivery.Delivery, error)
}

type DeliveryMapperImpl struct{}

func NewDeliveryMapper() DeliveryMapper {
	return &DeliveryMapperImpl{}
}

func (m *DeliveryMapperImpl) ToModel(d *delivery.Delivery) *models.DeliveryModel {
	return &models.DeliveryModel{
		ID:             d.ID(),
		TicketID:       d.TicketID(),
		ShippingCost:   d.ShippingCost(),
		AdditionalInfo: d.AdditionalInfo(),
		Method:         d.Method(),
		PaymentMethod:  d.PaymentMethod(),
		Paid:           d.Paid(),
		DeliveryDate:   d.DeliveryDate(),
		CreatedAt:      d.CreatedAt().UnixMilli(),
		UpdatedAt:      d.UpdatedAt().UnixMilli(),
	}
}

func (m *DeliveryMapperImpl) ToDomain(model *models.DeliveryModel) (*delivery.Delivery, error) {
	return delivery.ReconstructDelivery(
		model.ID,
		model.TicketID,
		model.ShippingCost,
		model.AdditionalInfo,
		model.Method,
		model.PaymentMethod,
		model.Paid,
		model.DeliveryDate,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
