package stats

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/stats/usecases"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type StatsHandler struct {
	ticketStatsUC     usecases.TicketStatsExecutor
	technicianStatsUC usecases.TechnicianStatsExecutor
	logger            logger.Interface
}

func NewStatsHandler(
	ticketStatsUC usecases.TicketStatsExecutor,
	technicianStatsUC usecases.TechnicianStatsExecutor,
) *StatsHandler {
	return &StatsHandler{
		ticketStatsUC:     ticketStatsUC,
		technicianStatsUC: technicianStatsUC,
		logger:            logger.NewLogger(),
	}
}

// Estadisticas handles GET /api/estadisticas. The drill-down buckets land
// under a key named after the grouping so the dashboard can pick them up
// without inspecting the group field.
func (h *StatsHandler) Estadisticas(c *gin.Context) {
	query := usecases.TicketStatsQuery{
		IsAdmin: c.GetBool(constants.ContextKeyIsAdmin),
		Period:  strings.TrimSpace(c.Query("period")),
		Group:   strings.TrimSpace(c.Query("group")),
	}
	query.Year, _ = strconv.Atoi(c.Query("year"))
	query.Month, _ = strconv.Atoi(c.Query("month"))

	result, err := h.ticketStatsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := gin.H{
		"total": result.Total,
		"items": result.Items,
		"group": result.Group,
	}
	switch result.Group {
	case usecases.GroupByState:
		body["idsByEstado"] = result.Buckets
	case usecases.GroupByTechnician:
		body["idsByTecnico"] = result.Buckets
	default:
		body["idsByModelo"] = result.Buckets
	}
	utils.OKResponse(c, body)
}

// EstadisticasTecnico handles GET /api/estadisticas-tecnico.
func (h *StatsHandler) EstadisticasTecnico(c *gin.Context) {
	query := usecases.TechnicianStatsQuery{
		IsAdmin:      c.GetBool(constants.ContextKeyIsAdmin),
		Technician:   strings.TrimSpace(c.Query("tecnico")),
		SessionEmail: c.GetString(constants.ContextKeyUserEmail),
		All:          c.Query("all") == "1" || c.Query("all") == "true",
		Period:       strings.TrimSpace(c.Query("period")),
	}
	query.Year, _ = strconv.Atoi(c.Query("year"))
	query.Month, _ = strconv.Atoi(c.Query("month"))

	result, err := h.technicianStatsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := gin.H{
		"tecnico":                  result.Technician,
		"year":                     nil,
		"month":                    nil,
		"totalImpresoras":          result.TotalPrinters,
		"totalImpresorasReparadas": result.TotalRepaired,
		"items":                    result.Items,
	}
	if result.Year != 0 {
		body["year"] = result.Year
		body["month"] = result.Month
	}
	utils.OKResponse(c, body)
}
