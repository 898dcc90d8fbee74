package models

type TechnicianModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"column:nombre;size:100"`
	LastName  string `gorm:"column:apellido;size:100"`
	Email     string `gorm:"column:email;size:200;uniqueIndex:idx_tecnicos_email"`
	Active    bool   `gorm:"column:activo;not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TechnicianModel) TableName() string {
	return "tecnicos"
}
