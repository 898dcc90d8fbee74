package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	Number          int64  `gorm:"column:ticket;uniqueIndex;not null"`
	ClientID        uint   `gorm:"column:cliente_id;not null;index"`
	TechnicianID    *uint  `gorm:"column:tecnico_id;index"`
	PrinterID       *uint  `gorm:"column:impresora_id;index"`
	Stamp           string `gorm:"column:marca_temporal;size:50;not null"`
	State           string `gorm:"column:estado;size:50;not null;index"`
	ClientNotes     string `gorm:"column:notas_del_cliente;type:text"`
	TechnicianNotes string `gorm:"column:notas_del_tecnico;type:text"`
	RepairedMachine string `gorm:"column:maquina_reparada;size:200"`
	RepairDate      string `gorm:"column:fecha_de_reparacion;size:20"`
	RequestBudget   string `gorm:"column:solicitar_presupuesto;size:20"`
	ImageMain       string `gorm:"column:imagen;size:500"`
	ImageTicket     string `gorm:"column:imagen_ticket;size:500"`
	ImageExtra      string `gorm:"column:imagen_extra;size:500"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"column:ticket_id;not null;index"`
	AuthorID  uint   `gorm:"column:autor_id;not null;index"`
	Message   string `gorm:"column:mensaje;type:text;not null"`
	CreatedAt int64  `gorm:"column:creado_en;autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comentarios"
}
