package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyIsAdmin   = "is_admin"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTickets      = "maquinas_reparacion"
	TableComments     = "comentarios"
	TableClients      = "clientes"
	TableTechnicians  = "tecnicos"
	TablePrinters     = "impresoras"
	TableParts        = "repuestos"
	TableBudgets      = "presupuestos"
	TableBudgetItems  = "presupuesto_items"
	TableDeliveries   = "delivery"
	TableUserProfiles = "usuarios_perfil"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
