package usecases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fixdesk/internal/application/resolver"
	"fixdesk/internal/domain/budget"
	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/domain/technician"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/storage"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

// UpdateTicketCommand carries partial updates: a nil pointer means the
// field was not sent and keeps its current value.
type UpdateTicketCommand struct {
	TicketID     uint
	IsAdmin      bool
	SessionEmail string

	State           *string
	FormDate        *string
	ReadyDate       *string
	TechnicianNotes *string
	ClientDetail    *string

	// TechnicianIDSet distinguishes "clear the assignment" (set, nil id)
	// from "leave it alone" (not set).
	TechnicianIDSet bool
	TechnicianID    *uint

	NationalID  *string
	Whatsapp    *string
	ClientEmail *string

	Machine *string
	Serial  *string
	Nozzle  *string

	DeliveryPaid   *string
	DeliveryMethod *string
	DeliveryCost   *string
	DeliveryInfo   *string

	BudgetAmount         *string
	BudgetLink           *string
	BudgetCoversWarranty *string
	BudgetDate           *string

	ImageMain   io.Reader
	ImageTicket io.Reader
	ImageExtra  io.Reader

	RemoveImageMain   bool
	RemoveImageTicket bool
	RemoveImageExtra  bool
}

type UpdateTicketResult struct {
	TicketID uint
	Number   int64
	Changes  []string
}

type UpdateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	clientRepo     client.ClientRepository
	printerRepo    printer.PrinterRepository
	technicianRepo technician.TechnicianRepository
	budgetRepo     budget.BudgetRepository
	deliveryRepo   delivery.DeliveryRepository
	resolver       *resolver.Service
	txMgr          db.Transactor
	images         ImageStore
	logger         logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	clientRepo client.ClientRepository,
	printerRepo printer.PrinterRepository,
	technicianRepo technician.TechnicianRepository,
	budgetRepo budget.BudgetRepository,
	deliveryRepo delivery.DeliveryRepository,
	resolverSvc *resolver.Service,
	txMgr db.Transactor,
	images ImageStore,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:     ticketRepo,
		clientRepo:     clientRepo,
		printerRepo:    printerRepo,
		technicianRepo: technicianRepo,
		budgetRepo:     budgetRepo,
		deliveryRepo:   deliveryRepo,
		resolver:       resolverSvc,
		txMgr:          txMgr,
		images:         images,
		logger:         logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ID no proporcionado")
	}

	var result *UpdateTicketResult
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		r, err := uc.execute(ctx, cmd)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *UpdateTicketUseCase) execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("No se pudo obtener el ticket (id=%d)", cmd.TicketID))
	}

	d := &diff{}

	uc.applyTicketFields(cmd, t, d)
	uc.applyTechnicianAssignment(ctx, cmd, t, d)

	if err := uc.applyClientFields(ctx, cmd, t, d); err != nil {
		return nil, err
	}
	if err := uc.applyPrinterFields(ctx, cmd, t, d); err != nil {
		return nil, err
	}
	if err := uc.applyDeliveryFields(ctx, cmd, t, d); err != nil {
		return nil, err
	}
	if err := uc.applyBudgetFields(ctx, cmd, t, d); err != nil {
		return nil, err
	}

	uc.applyImages(ctx, cmd, t, d)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if len(d.changes) > 0 {
		if err := uc.recordChangeComment(ctx, cmd, t, d.changes); err != nil {
			return nil, err
		}
	}

	return &UpdateTicketResult{
		TicketID: t.ID(),
		Number:   t.Number(),
		Changes:  d.changes,
	}, nil
}

func (uc *UpdateTicketUseCase) applyTicketFields(cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) {
	if cmd.State != nil && *cmd.State != "" && *cmd.State != t.State() {
		d.push("estado", t.State(), *cmd.State)
		t.SetState(*cmd.State)
	}
	if cmd.FormDate != nil {
		if stamp, ok := utils.ToMonthDayYear(*cmd.FormDate); ok && stamp != t.Stamp() {
			d.push("fecha formulario", t.Stamp(), stamp)
			t.SetStamp(stamp)
		}
	}
	if cmd.ReadyDate != nil {
		if date, ok := utils.NormalizeDateISO(*cmd.ReadyDate); ok && date != t.RepairDate() {
			d.push("fecha listo", t.RepairDate(), date)
			t.SetRepairDate(date)
		}
	}
	if cmd.TechnicianNotes != nil && *cmd.TechnicianNotes != t.TechnicianNotes() {
		d.push("nota técnico", t.TechnicianNotes(), *cmd.TechnicianNotes)
		t.SetTechnicianNotes(*cmd.TechnicianNotes)
	}
	if cmd.ClientDetail != nil && *cmd.ClientDetail != t.ClientNotes() {
		d.push("detalle del problema", t.ClientNotes(), *cmd.ClientDetail)
		t.SetClientNotes(*cmd.ClientDetail)
	}
	if cmd.Machine != nil && *cmd.Machine != "" && *cmd.Machine != t.RepairedMachine() {
		t.SetRepairedMachine(*cmd.Machine)
	}
}

func (uc *UpdateTicketUseCase) applyTechnicianAssignment(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) {
	if !cmd.TechnicianIDSet {
		return
	}

	prev := t.TechnicianID()
	if uintPtrEq(prev, cmd.TechnicianID) {
		return
	}

	d.pushRaw("técnico asignado", uc.technicianLabel(ctx, prev), uc.technicianLabel(ctx, cmd.TechnicianID))
	t.AssignTechnician(cmd.TechnicianID)
}

func (uc *UpdateTicketUseCase) technicianLabel(ctx context.Context, id *uint) string {
	if id == nil {
		return "—"
	}
	tec, err := uc.technicianRepo.FindByID(ctx, *id)
	if err != nil || tec == nil {
		return fmt.Sprintf("#%d", *id)
	}
	return tec.Label()
}

func (uc *UpdateTicketUseCase) applyClientFields(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) error {
	if cmd.NationalID == nil && cmd.Whatsapp == nil && cmd.ClientEmail == nil && cmd.ClientDetail == nil {
		return nil
	}

	cl, err := uc.clientRepo.FindByID(ctx, t.ClientID())
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}

	touched := false
	if cmd.NationalID != nil && *cmd.NationalID != "" {
		normalized := client.NormalizeNationalID(*cmd.NationalID)
		if normalized != cl.NationalID() {
			d.push("DNI/CUIT", cl.NationalID(), normalized)
			cl.SetNationalID(normalized)
			touched = true
		}
	}
	if cmd.Whatsapp != nil && *cmd.Whatsapp != "" && *cmd.Whatsapp != cl.Whatsapp() {
		d.push("WhatsApp", cl.Whatsapp(), *cmd.Whatsapp)
		cl.SetWhatsapp(*cmd.Whatsapp)
		touched = true
	}
	if cmd.ClientEmail != nil && *cmd.ClientEmail != "" && *cmd.ClientEmail != cl.Email() {
		d.push("correo del cliente", cl.Email(), *cmd.ClientEmail)
		cl.SetEmail(*cmd.ClientEmail)
		touched = true
	}
	if cmd.ClientDetail != nil && *cmd.ClientDetail != cl.Comments() {
		d.push("comentarios del cliente", cl.Comments(), *cmd.ClientDetail)
		cl.SetComments(*cmd.ClientDetail)
		touched = true
	}

	if !touched {
		return nil
	}
	if err := uc.clientRepo.Update(ctx, cl); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (uc *UpdateTicketUseCase) applyPrinterFields(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) error {
	machine := strVal(cmd.Machine)
	serial := strVal(cmd.Serial)
	if machine == "" && serial == "" && cmd.Nozzle == nil {
		return nil
	}

	if t.PrinterID() != nil {
		pr, err := uc.printerRepo.FindByID(ctx, *t.PrinterID())
		if err != nil {
			return fmt.Errorf("failed to load printer: %w", err)
		}
		if machine != "" && machine != pr.Model() {
			d.push("máquina (modelo)", pr.Model(), machine)
			pr.SetModel(machine)
		}
		if serial != "" && serial != pr.SerialNumber() {
			d.push("n° de serie", pr.SerialNumber(), serial)
			pr.SetSerialNumber(serial)
		}
		if cmd.Nozzle != nil && *cmd.Nozzle != pr.NozzleSize() {
			d.push("tamaño de boquilla", pr.NozzleSize(), *cmd.Nozzle)
			pr.SetNozzleSize(*cmd.Nozzle)
		}
		return uc.printerRepo.Update(ctx, pr)
	}

	pr, err := uc.resolver.ResolvePrinter(ctx, resolver.PrinterInput{
		Model:      machine,
		Machine:    machine,
		Serial:     serial,
		NozzleSize: strVal(cmd.Nozzle),
	})
	if err != nil {
		return err
	}
	d.push("máquina (modelo)", "", pr.Model())
	if serial != "" {
		d.push("n° de serie", "", serial)
	}
	if nozzle := strVal(cmd.Nozzle); nozzle != "" {
		d.push("tamaño de boquilla", "", nozzle)
	}
	t.AttachPrinter(pr.ID())
	return nil
}

func (uc *UpdateTicketUseCase) applyDeliveryFields(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) error {
	paid := cmd.DeliveryPaid
	method, cost, info := cmd.DeliveryMethod, cmd.DeliveryCost, cmd.DeliveryInfo
	if !cmd.IsAdmin {
		// Only the paid flag is writable by non-admins.
		method, cost, info = nil, nil, nil
	}
	if paid == nil && method == nil && cost == nil && info == nil {
		return nil
	}

	del, err := uc.deliveryRepo.FindLatestByTicketID(ctx, t.ID())
	if err != nil {
		return err
	}
	isNew := del == nil
	if isNew {
		del, err = delivery.NewDelivery(t.ID())
		if err != nil {
			return err
		}
	}

	if paid != nil {
		v := normalizeBoolText(*paid)
		d.pushFmt("cobrado", del.Paid(), v, boolShow)
		del.SetPaid(v)
	}
	if method != nil {
		d.push("modo de entrega", del.Method(), *method)
		del.SetMethod(*method)
	}
	if cost != nil {
		v := utils.NormalizeAmountText(*cost)
		d.pushFmt("costo delivery", del.ShippingCost(), v, moneyShow)
		del.SetShippingCost(v)
	}
	if info != nil {
		d.push("info delivery", del.AdditionalInfo(), *info)
		del.SetAdditionalInfo(*info)
	}

	if isNew {
		return uc.deliveryRepo.Save(ctx, del)
	}
	if err := uc.deliveryRepo.Update(ctx, del); err != nil {
		return err
	}
	return uc.deliveryRepo.DeleteOlderDuplicates(ctx, t.ID(), del.ID())
}

func (uc *UpdateTicketUseCase) applyBudgetFields(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) error {
	if cmd.BudgetAmount == nil && cmd.BudgetLink == nil && cmd.BudgetCoversWarranty == nil && cmd.BudgetDate == nil {
		return nil
	}

	b, err := uc.budgetRepo.FindLatestByTicketID(ctx, t.ID())
	if err != nil {
		return err
	}
	isNew := b == nil
	if isNew {
		b, err = budget.NewBudget(t.ID())
		if err != nil {
			return err
		}
	}

	if cmd.BudgetAmount != nil {
		v := utils.NormalizeAmountText(*cmd.BudgetAmount)
		d.pushFmt("monto", b.Amount(), v, moneyShow)
		b.SetAmount(v)
	}
	if cmd.BudgetLink != nil {
		d.push("link presupuesto", b.Link(), *cmd.BudgetLink)
		b.SetLink(*cmd.BudgetLink)
	}
	if cmd.BudgetCoversWarranty != nil {
		v := normalizeBoolText(*cmd.BudgetCoversWarranty)
		d.pushFmt("cubre garantía", b.CoversWarranty(), v, boolShow)
		b.SetCoversWarranty(v)
	}
	if cmd.BudgetDate != nil {
		if date, ok := utils.NormalizeDateISO(*cmd.BudgetDate); ok {
			if parsed, perr := biztime.ParseDateInBizTimezone(date); perr == nil {
				d.push("fecha presupuesto", formatBudgetDate(b), date)
				b.SetBudgetDate(parsed)
			}
		}
	}
	b.EnsureBudgetDate()

	if isNew {
		if err := uc.budgetRepo.Save(ctx, b); err != nil {
			return err
		}
	} else {
		if err := uc.budgetRepo.Update(ctx, b); err != nil {
			return err
		}
		if err := uc.budgetRepo.DeleteOlderDuplicates(ctx, t.ID(), b.ID()); err != nil {
			return err
		}
	}

	// Saving a budget flags the ticket as quoted.
	t.SetState("P. Enviado")
	return nil
}

func (uc *UpdateTicketUseCase) applyImages(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, d *diff) {
	if uc.images == nil {
		return
	}

	main := uc.applyImage(ctx, t.Number(), storage.MainImageName(t.Number()), cmd.ImageMain, cmd.RemoveImageMain, t.ImageMain())
	ticketImg := uc.applyImage(ctx, t.Number(), storage.TicketImageName(t.Number()), cmd.ImageTicket, cmd.RemoveImageTicket, t.ImageTicket())
	extra := uc.applyImage(ctx, t.Number(), storage.ExtraImageName(t.Number()), cmd.ImageExtra, cmd.RemoveImageExtra, t.ImageExtra())

	d.pushFmt("imagen principal", t.ImageMain(), main, imgShow)
	d.pushFmt("imagen del ticket", t.ImageTicket(), ticketImg, imgShow)
	d.pushFmt("imagen extra", t.ImageExtra(), extra, imgShow)

	if main != t.ImageMain() || ticketImg != t.ImageTicket() || extra != t.ImageExtra() {
		t.SetImages(main, ticketImg, extra)
	}
}

// applyImage uploads or removes one image slot and returns the resulting
// URL. Failures keep the current value; uploads are best effort.
func (uc *UpdateTicketUseCase) applyImage(ctx context.Context, number int64, name string, upload io.Reader, remove bool, current string) string {
	switch {
	case upload != nil:
		url, err := uc.images.Save(ctx, name, upload)
		if err != nil {
			uc.logger.Warnw("image upload failed", "ticket", number, "name", name, "error", err)
			return current
		}
		return url
	case remove:
		if err := uc.images.Remove(ctx, name); err != nil {
			uc.logger.Warnw("image removal failed", "ticket", number, "name", name, "error", err)
		}
		return ""
	default:
		return current
	}
}

func (uc *UpdateTicketUseCase) recordChangeComment(ctx context.Context, cmd UpdateTicketCommand, t *ticket.Ticket, changes []string) error {
	author, err := uc.resolver.ResolveAuthor(ctx, resolver.AuthorRef{Email: cmd.SessionEmail})
	if err != nil {
		return mapAuthorErr(err)
	}

	localPart := utils.EmailLocalPart(cmd.SessionEmail)
	if localPart == "" {
		localPart = author.Label()
	}

	message := localPart + " cambió los siguientes datos:\n" + strings.Join(changes, "\n")
	comment, err := ticket.NewComment(t.ID(), author.ID(), message)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	return uc.ticketRepo.SaveComment(ctx, comment)
}

// diff accumulates the human-readable change lines for the auto comment.
type diff struct {
	changes []string
}

func (d *diff) push(label, before, after string) {
	d.pushFmt(label, before, after, show)
}

func (d *diff) pushFmt(label, before, after string, f func(string) string) {
	b, a := f(before), f(after)
	if b == a {
		return
	}
	d.changes = append(d.changes, fmt.Sprintf(`- <strong>%s</strong>: de "%s" a "%s"`, label, b, a))
}

func (d *diff) pushRaw(label, before, after string) {
	if before == after {
		return
	}
	d.changes = append(d.changes, fmt.Sprintf(`- <strong>%s</strong>: de "%s" a "%s"`, label, before, after))
}

func show(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func boolShow(v string) string {
	switch v {
	case "true":
		return "Sí"
	case "false":
		return "No"
	default:
		return "—"
	}
}

func moneyShow(v string) string {
	if v == "" {
		return "—"
	}
	if n, ok := utils.ParseNumberLike(v); ok {
		return "$" + utils.FormatAmountAR(n)
	}
	return v
}

func imgShow(v string) string {
	if v == "" {
		return "—"
	}
	return "Cargada"
}

func normalizeBoolText(v string) string {
	if v == "true" {
		return "true"
	}
	return "false"
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func uintPtrEq(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatBudgetDate(b *budget.Budget) string {
	if b.BudgetDate() == nil {
		return ""
	}
	return b.BudgetDate().Format("2006-01-02")
}
