package models

type PrinterModel struct {
	ID         uint   `gorm:"primaryKey"`
	Model      string `gorm:"column:modelo;size:200"`
	Machine    string `gorm:"column:maquina;size:200"`
	Serial     string `gorm:"column:numero_de_serie;size:100;uniqueIndex:idx_impresoras_serie"`
	NozzleSize string `gorm:"column:tamano_de_boquilla;size:50"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PrinterModel) TableName() string {
	return "impresoras"
}
