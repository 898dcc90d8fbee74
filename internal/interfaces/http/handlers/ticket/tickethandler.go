package ticket

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/ticket/usecases"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/markdown"
	"fixdesk/internal/shared/utils"
)

type TicketHandler struct {
	createUC     usecases.CreateTicketExecutor
	updateUC     usecases.UpdateTicketExecutor
	deleteUC     usecases.DeleteTicketExecutor
	commentUC    usecases.AddCommentExecutor
	readyUC      usecases.MarkReadyExecutor
	nextNumberUC usecases.NextTicketNumberExecutor
	markdown     markdown.MarkdownService
	logger       logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	updateUC usecases.UpdateTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	commentUC usecases.AddCommentExecutor,
	readyUC usecases.MarkReadyExecutor,
	nextNumberUC usecases.NextTicketNumberExecutor,
	markdownSvc markdown.MarkdownService,
) *TicketHandler {
	return &TicketHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		commentUC:    commentUC,
		readyUC:      readyUC,
		nextNumberUC: nextNumberUC,
		markdown:     markdownSvc,
		logger:       logger.NewLogger(),
	}
}

// CrearTicket handles POST /api/crearTicket. The intake form posts
// multipart data with up to three optional images.
func (h *TicketHandler) CrearTicket(c *gin.Context) {
	cmd := usecases.CreateTicketCommand{
		ClientName:    strings.TrimSpace(c.PostForm("cliente")),
		NationalID:    strings.TrimSpace(c.PostForm("dniCuit")),
		ClientEmail:   strings.TrimSpace(c.PostForm("correo")),
		Whatsapp:      strings.TrimSpace(c.PostForm("whatsapp")),
		PrinterModel:  strings.TrimSpace(c.PostForm("modelo")),
		Machine:       strings.TrimSpace(c.PostForm("maquina")),
		Serial:        strings.TrimSpace(c.PostForm("numeroSerie")),
		NozzleSize:    strings.TrimSpace(c.PostForm("boquilla")),
		State:         strings.TrimSpace(c.PostForm("estado")),
		ClientNotes:   strings.TrimSpace(c.PostForm("comentarios")),
		RequestBudget: strings.TrimSpace(c.PostForm("solicitarPresupuesto")),
		TechnicianID:  parseOptionalID(c.PostForm("tecnico")),
	}

	if raw := strings.TrimSpace(c.PostForm("ticket")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Número de ticket inválido")
			return
		}
		cmd.Number = n
	}

	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()
	cmd.ImageMain, closers = openUpload(c, "imagenArchivo", closers)
	cmd.ImageTicket, closers = openUpload(c, "imagenTicketArchivo", closers)
	cmd.ImageExtra, closers = openUpload(c, "imagenExtraArchivo", closers)

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The intake form expects a redirect back with the assigned number.
	c.Redirect(http.StatusSeeOther, "/addTicket?ok=1&ticket="+url.QueryEscape(strconv.FormatInt(result.Number, 10)))
}

// ActualizarTicket handles POST /api/actualizarTicket?id=N. Only the
// fields present in the form are touched; everything else keeps its
// current value.
func (h *TicketHandler) ActualizarTicket(c *gin.Context) {
	id, ok := ticketRowID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Falta el parámetro id")
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:     id,
		IsAdmin:      c.GetBool(constants.ContextKeyIsAdmin),
		SessionEmail: c.GetString(constants.ContextKeyUserEmail),

		State:           formPtr(c, "estado"),
		FormDate:        formPtr(c, "fechaFormulario"),
		ReadyDate:       formPtr(c, "timestampListo"),
		TechnicianNotes: formPtr(c, "notaTecnico"),
		ClientDetail:    formPtr(c, "detalleCliente"),

		NationalID:  formPtr(c, "dniCuit"),
		Whatsapp:    formPtr(c, "whatsapp"),
		ClientEmail: formPtr(c, "correo"),

		Machine: firstFormPtr(c, "maquina", "modelo"),
		Serial:  formPtr(c, "numeroSerie"),
		Nozzle:  formPtr(c, "boquilla"),

		DeliveryPaid:   formPtr(c, "cobrado"),
		DeliveryMethod: formPtr(c, "medioEntrega"),
		DeliveryCost:   formPtr(c, "costoDelivery"),
		DeliveryInfo:   formPtr(c, "infoDelivery"),

		BudgetAmount:         formPtr(c, "monto"),
		BudgetLink:           formPtr(c, "linkPresupuesto"),
		BudgetCoversWarranty: firstFormPtr(c, "cubreGarantia", "cubre_garantia"),
		BudgetDate:           formPtr(c, "timestampPresupuesto"),

		RemoveImageMain:   c.DefaultPostForm("borrarImagen", "false") == "true",
		RemoveImageTicket: c.DefaultPostForm("borrarImagenTicket", "false") == "true",
		RemoveImageExtra:  c.DefaultPostForm("borrarImagenExtra", "false") == "true",
	}

	if raw, present := c.GetPostForm("tecnico_id"); present {
		cmd.TechnicianIDSet = true
		cmd.TechnicianID = parseOptionalID(raw)
	}

	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()
	cmd.ImageMain, closers = openUpload(c, "imagenArchivo", closers)
	cmd.ImageTicket, closers = openUpload(c, "imagenTicketArchivo", closers)
	cmd.ImageExtra, closers = openUpload(c, "imagenExtraArchivo", closers)

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"ok":      true,
		"id":      result.TicketID,
		"ticket":  result.Number,
		"cambios": result.Changes,
	})
}

// EliminarTicket handles POST /api/eliminarTicket?id=N, where N is the
// ticket number shown to the workshop.
func (h *TicketHandler) EliminarTicket(c *gin.Context) {
	number, ok := ticketNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "ID no proporcionado")
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketNumber: number,
		IsAdmin:      c.GetBool(constants.ContextKeyIsAdmin),
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"ok": true, "id": result.TicketID, "ticket": result.Number})
}

type addCommentRequest struct {
	TicketID     int64  `json:"ticketId"`
	Mensaje      string `json:"mensaje"`
	TechnicianID *uint  `json:"tecnicoId"`
}

// AgregarComentario handles POST /api/agregarComentario.
func (h *TicketHandler) AgregarComentario(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticketId inválido")
		return
	}
	if req.TicketID < 1 {
		utils.ErrorResponse(c, http.StatusBadRequest, "ticketId inválido")
		return
	}
	if strings.TrimSpace(req.Mensaje) == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "El mensaje no puede estar vacío")
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketNumber: req.TicketID,
		Message:      req.Mensaje,
		TechnicianID: req.TechnicianID,
		SessionEmail: c.GetString(constants.ContextKeyUserEmail),
	}

	result, err := h.commentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	html, err := h.markdown.RenderComment(req.Mensaje)
	if err != nil {
		h.logger.Warnw("comment render failed", "comment_id", result.CommentID, "error", err)
		html = ""
	}

	utils.OKResponse(c, gin.H{
		"ok":               true,
		"id":               result.CommentID,
		"creado_en":        result.CreatedAt,
		"creado_en_humano": biztime.FormatInBizTimezone(result.CreatedAt, "2/1/2006, 15:04:05"),
		"autor":            result.AuthorName,
		"mensaje_html":     html,
	})
}

// MaquinaLista handles POST /api/maquinaLista?id=N.
func (h *TicketHandler) MaquinaLista(c *gin.Context) {
	number, ok := ticketNumberParam(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Falta parámetro id")
		return
	}

	cmd := usecases.MarkReadyCommand{
		TicketNumber: number,
		SessionEmail: c.GetString(constants.ContextKeyUserEmail),
	}

	result, err := h.readyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"ok":                  true,
		"id":                  result.TicketID,
		"ticket":              result.Number,
		"fecha_de_reparacion": result.RepairDate,
	})
}

// ProximoTicket handles GET /api/proximoTicket.
func (h *TicketHandler) ProximoTicket(c *gin.Context) {
	result, err := h.nextNumberUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"sugerido": result.Suggested})
}

// formPtr returns the trimmed form value when the field was submitted,
// nil when it was absent. An empty submitted value still counts as set.
func formPtr(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		v = strings.TrimSpace(v)
		return &v
	}
	return nil
}

func firstFormPtr(c *gin.Context, keys ...string) *string {
	for _, key := range keys {
		if p := formPtr(c, key); p != nil {
			return p
		}
	}
	return nil
}

func parseOptionalID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}

func ticketRowID(c *gin.Context) (uint, bool) {
	raw := c.Query("id")
	if raw == "" {
		raw = c.PostForm("id")
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func ticketNumberParam(c *gin.Context) (int64, bool) {
	raw := c.Query("id")
	if raw == "" {
		raw = c.PostForm("id")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func openUpload(c *gin.Context, field string, closers []io.Closer) (io.Reader, []io.Closer) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, closers
	}
	f, err := fh.Open()
	if err != nil {
		return nil, closers
	}
	return f, append(closers, f)
}
