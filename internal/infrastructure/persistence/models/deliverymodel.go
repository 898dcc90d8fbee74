package models

type DeliveryModel struct {
	ID             uint   `gorm:"primaryKey"`
	TicketID       uint   `gorm:"column:ticket_id;not null;index"`
	ShippingCost   string `gorm:"column:cotizar_delivery;size:50"`
	AdditionalInfo string `gorm:"column:informacion_adicional_delivery;type:text"`
	Method         string `gorm:"column:medio_de_entrega;size:100"`
	PaymentMethod  string `gorm:"column:forma_de_pago;size:100"`
	Paid           string `gorm:"column:pagado;size:50"`
	DeliveryDate   string `gorm:"column:fecha_de_entrega;size:20"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DeliveryModel) TableName() string {
	return "delivery"
}
