package technician

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/technician/usecases"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type TechnicianHandler struct {
	listUC usecases.ListTechniciansExecutor
	logger logger.Interface
}

func NewTechnicianHandler(listUC usecases.ListTechniciansExecutor) *TechnicianHandler {
	return &TechnicianHandler{listUC: listUC, logger: logger.NewLogger()}
}

// ListarTecnicos handles GET /api/listarTecnicos.
func (h *TechnicianHandler) ListarTecnicos(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := result.Items
	if items == nil {
		items = []usecases.TechnicianItem{}
	}
	utils.OKResponse(c, gin.H{"ok": true, "items": items})
}
