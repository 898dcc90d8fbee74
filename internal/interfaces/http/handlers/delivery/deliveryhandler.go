package delivery

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/delivery/usecases"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type DeliveryHandler struct {
	upsertUC usecases.UpsertDeliveryExecutor
	logger   logger.Interface
}

func NewDeliveryHandler(upsertUC usecases.UpsertDeliveryExecutor) *DeliveryHandler {
	return &DeliveryHandler{upsertUC: upsertUC, logger: logger.NewLogger()}
}

// ActualizarDelivery handles POST /api/actualizarDelivery?id=N. The form
// rewrites the whole delivery row; the optional address fields update the
// ticket's client.
func (h *DeliveryHandler) ActualizarDelivery(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		raw = c.PostForm("id")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Falta el parámetro id (ticket_id)")
		return
	}

	cmd := usecases.UpsertDeliveryCommand{
		TicketID:       uint(id),
		ShippingCost:   strings.TrimSpace(c.PostForm("cotizar_delivery")),
		AdditionalInfo: strings.TrimSpace(c.PostForm("informacion_adicional_delivery")),
		MethodSelect:   strings.TrimSpace(c.PostForm("medio_de_entrega_select")),
		MethodOther:    strings.TrimSpace(c.PostForm("medio_de_entrega_otro")),
		Method:         strings.TrimSpace(c.PostForm("medio_de_entrega")),
		PaymentMethod:  strings.TrimSpace(c.PostForm("forma_de_pago")),
		Paid:           strings.TrimSpace(c.PostForm("pagado")),
		Address:        strings.TrimSpace(c.PostForm("direccion")),
		Locality:       strings.TrimSpace(c.PostForm("localidad")),
	}

	result, execErr := h.upsertUC.Execute(c.Request.Context(), cmd)
	if execErr != nil {
		utils.ErrorResponseWithError(c, execErr)
		return
	}

	utils.OKResponse(c, gin.H{"ok": true, "id": result.DeliveryID, "creado": result.Created})
}
