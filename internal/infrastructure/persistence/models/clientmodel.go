package models

type ClientModel struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"column:cliente;size:200;not null;uniqueIndex:idx_clientes_cliente"`
	FirstName string `gorm:"column:nombre;size:100"`
	LastName  string `gorm:"column:apellido;size:100"`
	// Nullable so that clients without a document do not collide on the
	// unique index. MySQL allows multiple NULLs on a unique index.
	NationalID *string `gorm:"column:dni_cuit;size:20;uniqueIndex:idx_clientes_dni_cuit"`
	WhatsApp   string  `gorm:"column:whatsapp;size:50"`
	Email      string  `gorm:"column:correo_electronico;size:200"`
	Comments   string  `gorm:"column:comentarios;type:text"`
	Address    string  `gorm:"column:direccion;size:200"`
	Locality   string  `gorm:"column:localidad;size:100"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ClientModel) TableName() string {
	return "clientes"
}
