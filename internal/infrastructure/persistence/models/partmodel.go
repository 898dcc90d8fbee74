package models

type PartModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"column:nombre;size:300;not null"`
	Quantity  string `gorm:"column:cantidad;size:50"`
	Stock     string `gorm:"column:stock;size:50"`
	Category  string `gorm:"column:categoria;size:100;index"`
	Price     string `gorm:"column:precio;size:50"`
	Active    bool   `gorm:"column:activo;not null;default:true;index"`
	CreatedAt int64  `gorm:"column:creado_en;autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"column:actualizado_en;autoUpdateTime:milli;not null"`
}

func (PartModel) TableName() string {
	return "repuestos"
}
