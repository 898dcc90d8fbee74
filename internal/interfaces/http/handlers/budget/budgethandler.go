package budget

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/budget/usecases"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type BudgetHandler struct {
	getItemsUC  usecases.GetBudgetItemsExecutor
	saveItemsUC usecases.SaveBudgetItemsExecutor
	updateUC    usecases.UpdateBudgetExecutor
	logger      logger.Interface
}

func NewBudgetHandler(
	getItemsUC usecases.GetBudgetItemsExecutor,
	saveItemsUC usecases.SaveBudgetItemsExecutor,
	updateUC usecases.UpdateBudgetExecutor,
) *BudgetHandler {
	return &BudgetHandler{
		getItemsUC:  getItemsUC,
		saveItemsUC: saveItemsUC,
		updateUC:    updateUC,
		logger:      logger.NewLogger(),
	}
}

// budgetItemRow is the wire shape the budget editor expects per line.
type budgetItemRow struct {
	PartID     uint    `json:"repuesto_id"`
	Quantity   int     `json:"cantidad"`
	Name       string  `json:"componente"`
	Price      string  `json:"precio"`
	UnitPrice  float64 `json:"precio_unit_num"`
	Stock      string  `json:"stock"`
	StockCount int     `json:"stock_num"`
	Category   string  `json:"categoria"`
	Active     bool    `json:"activo"`
}

// ObtenerItems handles GET /api/presupuestoItems?ticket_id=N.
func (h *BudgetHandler) ObtenerItems(c *gin.Context) {
	number, ok := parseTicketNumber(c.Query("ticket_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"rows": []budgetItemRow{}, "error": "ticket_id inválido"})
		return
	}

	result, err := h.getItemsUC.Execute(c.Request.Context(), usecases.GetBudgetItemsQuery{TicketNumber: number})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows := make([]budgetItemRow, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, budgetItemRow{
			PartID:     r.PartID,
			Quantity:   r.Quantity,
			Name:       r.Name,
			Price:      r.Price,
			UnitPrice:  r.UnitPrice,
			Stock:      r.Stock,
			StockCount: r.StockCount,
			Category:   r.Category,
			Active:     r.Active,
		})
	}
	utils.OKResponse(c, gin.H{"rows": rows})
}

type saveItemsRequest struct {
	TicketID int64 `json:"ticket_id"`
	Items    []struct {
		PartID   uint `json:"repuesto_id"`
		Quantity int  `json:"cantidad"`
	} `json:"items"`
}

// GuardarItems handles POST /api/presupuestoItems. The submitted list
// replaces the budget's line items atomically; any stock shortage aborts
// the whole save and reports every offending line.
func (h *BudgetHandler) GuardarItems(c *gin.Context) {
	var req saveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "ticket_id inválido"})
		return
	}
	if req.TicketID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "ticket_id inválido"})
		return
	}

	cmd := usecases.SaveBudgetItemsCommand{TicketNumber: req.TicketID}
	for _, it := range req.Items {
		cmd.Items = append(cmd.Items, usecases.BudgetItemInput{PartID: it.PartID, Quantity: it.Quantity})
	}

	result, err := h.saveItemsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		var stockErr *usecases.StockValidationError
		if stderrors.As(err, &stockErr) {
			utils.ErrorResponseWith(c, http.StatusBadRequest, stockErr.Error(), map[string]interface{}{
				"stock_errors": stockErr.Errors,
			})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"ok": true, "count": result.Count})
}

// ActualizarPresupuesto handles POST /api/actualizarPresupuesto?id=N.
// Only the submitted header fields are touched.
func (h *BudgetHandler) ActualizarPresupuesto(c *gin.Context) {
	number, ok := parseTicketNumber(c.Query("id"))
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Falta el parámetro id (ticket_id)")
		return
	}

	cmd := usecases.UpdateBudgetCommand{
		TicketNumber: number,
		SessionEmail: c.GetString(constants.ContextKeyUserEmail),

		Amount:         formPtr(c, "monto"),
		Link:           formPtr(c, "link_presupuesto"),
		Approved:       formPtr(c, "presupuesto_aprobado"),
		WarrantyActive: formPtr(c, "garantia_activa"),
		AdminNotes:     formPtr(c, "notas_administracion"),
		RequestBudget:  formPtr(c, "solicitar_presupuesto"),
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"ok": true, "id": result.BudgetID, "ticket": result.Number})
}

func formPtr(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		v = strings.TrimSpace(v)
		return &v
	}
	return nil
}

func parseTicketNumber(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
