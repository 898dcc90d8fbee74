package routes

import (
	"github.com/gin-gonic/gin"

	budgethandlers "fixdesk/internal/interfaces/http/handlers/budget"
	deliveryhandlers "fixdesk/internal/interfaces/http/handlers/delivery"
	parthandlers "fixdesk/internal/interfaces/http/handlers/part"
	statshandlers "fixdesk/internal/interfaces/http/handlers/stats"
	technicianhandlers "fixdesk/internal/interfaces/http/handlers/technician"
	tickethandlers "fixdesk/internal/interfaces/http/handlers/ticket"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/shared/authorization"
)

// APIRouteConfig holds every handler mounted under /api.
type APIRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	BudgetHandler     *budgethandlers.BudgetHandler
	PartHandler       *parthandlers.PartHandler
	StatsHandler      *statshandlers.StatsHandler
	TechnicianHandler *technicianhandlers.TechnicianHandler
	DeliveryHandler   *deliveryhandlers.DeliveryHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupAPIRoutes mounts the workshop API. Route names mirror the form
// actions of the frontend, so they are Spanish verbs rather than REST
// resources.
func SetupAPIRoutes(engine *gin.Engine, cfg *APIRouteConfig) {
	api := engine.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Tickets
		api.POST("/crearTicket", cfg.TicketHandler.CrearTicket)
		api.POST("/actualizarTicket", cfg.TicketHandler.ActualizarTicket)
		api.POST("/eliminarTicket", authorization.RequireAdmin(), cfg.TicketHandler.EliminarTicket)
		api.POST("/agregarComentario", cfg.TicketHandler.AgregarComentario)
		api.POST("/maquinaLista", cfg.TicketHandler.MaquinaLista)
		api.GET("/proximoTicket", cfg.TicketHandler.ProximoTicket)

		// Budgets
		api.GET("/presupuestoItems", cfg.BudgetHandler.ObtenerItems)
		api.POST("/presupuestoItems", cfg.BudgetHandler.GuardarItems)
		api.POST("/actualizarPresupuesto", cfg.BudgetHandler.ActualizarPresupuesto)

		// Parts catalog
		api.POST("/actualizarRepuesto", cfg.PartHandler.ActualizarRepuesto)
		api.POST("/borrarRepuesto", cfg.PartHandler.BorrarRepuesto)
		api.GET("/listarRepuestos", cfg.PartHandler.ListarRepuestos)
		api.GET("/categoriasRepuestos", cfg.PartHandler.CategoriasRepuestos)

		// Stats (admin only)
		api.GET("/estadisticas", authorization.RequireAdmin(), cfg.StatsHandler.Estadisticas)
		api.GET("/estadisticas-tecnico", authorization.RequireAdmin(), cfg.StatsHandler.EstadisticasTecnico)

		// Technicians and delivery
		api.GET("/listarTecnicos", cfg.TechnicianHandler.ListarTecnicos)
		api.POST("/actualizarDelivery", cfg.DeliveryHandler.ActualizarDelivery)
	}
}
