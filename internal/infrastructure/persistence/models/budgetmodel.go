package models

type BudgetModel struct {
	ID             uint   `gorm:"primaryKey"`
	TicketID       uint   `gorm:"column:ticket_id;not null;index"`
	Amount         string `gorm:"column:monto;size:50"`
	Link           string `gorm:"column:link_presupuesto;size:500"`
	Approved       string `gorm:"column:presupuesto_aprobado;size:50"`
	WarrantyActive string `gorm:"column:garantia_activa;size:50"`
	CoversWarranty string `gorm:"column:cubre_garantia;size:50"`
	AdminNotes     string `gorm:"column:notas_administracion;type:text"`
	BudgetDate     *int64 `gorm:"column:fecha_presupuesto"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (BudgetModel) TableName() string {
	return "presupuestos"
}

// LineItemModel is the only table carrying a real foreign key: repuesto_id
// references repuestos with ON DELETE RESTRICT, so deleting a referenced
// part fails at the database and the caller can fall back to deactivation.
type LineItemModel struct {
	ID        uint    `gorm:"primaryKey"`
	BudgetID  uint    `gorm:"column:presupuesto_id;not null;index"`
	PartID    uint    `gorm:"column:repuesto_id;not null;index"`
	Quantity  int     `gorm:"column:cantidad;not null"`
	UnitPrice float64 `gorm:"column:precio_unit;not null"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
}

func (LineItemModel) TableName() string {
	return "presupuesto_repuestos"
}
