package part

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/part/usecases"
	domain "fixdesk/internal/domain/part"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type PartHandler struct {
	upsertUC     usecases.UpsertPartExecutor
	deleteUC     usecases.DeletePartExecutor
	listUC       usecases.ListPartsExecutor
	categoriesUC usecases.ListCategoriesExecutor
	logger       logger.Interface
}

func NewPartHandler(
	upsertUC usecases.UpsertPartExecutor,
	deleteUC usecases.DeletePartExecutor,
	listUC usecases.ListPartsExecutor,
	categoriesUC usecases.ListCategoriesExecutor,
) *PartHandler {
	return &PartHandler{
		upsertUC:     upsertUC,
		deleteUC:     deleteUC,
		listUC:       listUC,
		categoriesUC: categoriesUC,
		logger:       logger.NewLogger(),
	}
}

// partRow is the catalog row shape the parts screen consumes.
type partRow struct {
	ID       uint   `json:"id"`
	Name     string `json:"componentes_presupuestados"`
	Quantity string `json:"cantidad"`
	Stock    string `json:"stock"`
	Category string `json:"categoria"`
	Price    string `json:"precio"`
	Active   bool   `json:"activo"`
}

type upsertPartRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"componentes" validate:"required,max=255"`
	Quantity string `json:"cantidad" validate:"max=32"`
	Stock    string `json:"stock" validate:"max=32"`
	Category string `json:"categoria" validate:"max=100"`
	Price    string `json:"precio" validate:"max=32"`
	Active   *bool  `json:"activo"`
}

// ActualizarRepuesto handles POST /api/actualizarRepuesto. A payload
// without id creates a new catalog row.
func (h *PartHandler) ActualizarRepuesto(c *gin.Context) {
	var req upsertPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Payload inválido")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpsertPartCommand{
		PartID:   req.ID,
		Name:     strings.TrimSpace(req.Name),
		Quantity: strings.TrimSpace(req.Quantity),
		Stock:    strings.TrimSpace(req.Stock),
		Category: strings.TrimSpace(req.Category),
		Price:    strings.TrimSpace(req.Price),
	}
	if req.Active != nil {
		cmd.Active = *req.Active
		cmd.ActiveSet = true
	}

	result, err := h.upsertUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, partRow{
		ID:       result.PartID,
		Name:     result.Name,
		Quantity: result.Quantity,
		Stock:    result.Stock,
		Category: result.Category,
		Price:    result.Price,
		Active:   result.Active,
	})
}

// BorrarRepuesto handles POST /api/borrarRepuesto?id=N. Parts still
// referenced by budget lines are deactivated instead of deleted.
func (h *PartHandler) BorrarRepuesto(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		raw = c.PostForm("id")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "id inválido")
		return
	}

	result, execErr := h.deleteUC.Execute(c.Request.Context(), usecases.DeletePartCommand{PartID: uint(id)})
	if execErr != nil {
		utils.ErrorResponseWithError(c, execErr)
		return
	}

	utils.OKResponse(c, gin.H{"ok": true, "mode": result.Mode})
}

// ListarRepuestos handles GET /api/listarRepuestos.
func (h *PartHandler) ListarRepuestos(c *gin.Context) {
	query := usecases.ListPartsQuery{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("categoria")),
	}
	if raw := c.Query("activo"); raw != "" {
		active := raw == "true" || raw == "1"
		query.Active = &active
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		query.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		query.PageSize = size
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows := make([]partRow, 0, len(result.Parts))
	for _, p := range result.Parts {
		rows = append(rows, toPartRow(p))
	}
	utils.OKResponse(c, gin.H{"items": rows, "total": result.Total})
}

// CategoriasRepuestos handles GET /api/categoriasRepuestos.
func (h *PartHandler) CategoriasRepuestos(c *gin.Context) {
	result, err := h.categoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"categorias": result.Categories})
}

func toPartRow(p *domain.Part) partRow {
	return partRow{
		ID:       p.ID(),
		Name:     p.Name(),
		Quantity: p.Quantity(),
		Stock:    p.Stock(),
		Category: p.Category(),
		Price:    p.Price(),
		Active:   p.IsActive(),
	}
}
