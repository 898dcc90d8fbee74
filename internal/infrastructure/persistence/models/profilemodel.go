package models

type ProfileModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"column:email;size:200;uniqueIndex:idx_perfil_email"`
	Role      string `gorm:"column:rol;size:50"`
	Admin     bool   `gorm:"column:admin;not null;default:false"`
	Active    bool   `gorm:"column:activo;not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProfileModel) TableName() string {
	return "usuarios_perfil"
}
