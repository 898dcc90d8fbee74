package usecases

import (
	"context"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

// UpsertDeliveryCommand carries the hand-back form of one ticket. The form
// overwrites the whole delivery row, so all fields are plain strings; an
// empty value clears the column. MethodSelect/MethodOther mirror the form's
// dropdown with a free-text "Otro" option, Method is the legacy direct
// field.
type UpsertDeliveryCommand struct {
	TicketID       uint
	ShippingCost   string
	AdditionalInfo string
	MethodSelect   string
	MethodOther    string
	Method         string
	PaymentMethod  string
	Paid           string

	// Address and Locality update the ticket's client when present.
	Address  string
	Locality string
}

type UpsertDeliveryResult struct {
	DeliveryID uint
	TicketID   uint
	Created    bool
}

type UpsertDeliveryUseCase struct {
	ticketRepo   ticket.TicketRepository
	clientRepo   client.ClientRepository
	deliveryRepo delivery.DeliveryRepository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewUpsertDeliveryUseCase(
	ticketRepo ticket.TicketRepository,
	clientRepo client.ClientRepository,
	deliveryRepo delivery.DeliveryRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpsertDeliveryUseCase {
	return &UpsertDeliveryUseCase{
		ticketRepo:   ticketRepo,
		clientRepo:   clientRepo,
		deliveryRepo: deliveryRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpsertDeliveryUseCase) Execute(ctx context.Context, cmd UpsertDeliveryCommand) (*UpsertDeliveryResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("Falta el parámetro id (ticket_id)")
	}
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket no encontrado")
	}

	var result *UpsertDeliveryResult
	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		d, err := uc.deliveryRepo.FindLatestByTicketID(ctx, t.ID())
		if err != nil {
			return err
		}
		created := d == nil
		if created {
			d, err = delivery.NewDelivery(t.ID())
			if err != nil {
				return err
			}
		}

		d.SetShippingCost(utils.NormalizeAmountText(cmd.ShippingCost))
		d.SetAdditionalInfo(cmd.AdditionalInfo)
		d.SetMethod(resolveMethod(cmd))
		d.SetPaymentMethod(cmd.PaymentMethod)
		d.SetPaid(cmd.Paid)
		d.EnsureDeliveryDate()

		if created {
			if err := uc.deliveryRepo.Save(ctx, d); err != nil {
				return err
			}
		} else {
			if err := uc.deliveryRepo.Update(ctx, d); err != nil {
				return err
			}
			if err := uc.deliveryRepo.DeleteOlderDuplicates(ctx, t.ID(), d.ID()); err != nil {
				return err
			}
		}

		result = &UpsertDeliveryResult{DeliveryID: d.ID(), TicketID: t.ID(), Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.updateClientAddress(ctx, t, cmd)

	return result, nil
}

// updateClientAddress is best effort: the delivery row is already saved and
// a client lookup failure should not undo it.
func (uc *UpsertDeliveryUseCase) updateClientAddress(ctx context.Context, t *ticket.Ticket, cmd UpsertDeliveryCommand) {
	if cmd.Address == "" && cmd.Locality == "" {
		return
	}

	cl, err := uc.clientRepo.FindByID(ctx, t.ClientID())
	if err != nil || cl == nil {
		uc.logger.Warnw("client address update skipped", "ticket_id", t.ID(), "error", err)
		return
	}
	cl.SetAddress(cmd.Address, cmd.Locality)
	if err := uc.clientRepo.Update(ctx, cl); err != nil {
		uc.logger.Warnw("client address update failed", "client_id", cl.ID(), "error", err)
	}
}

// resolveMethod picks the hand-back method out of the form's dropdown. An
// "Otro" selection defers to the free-text field; otherwise the dropdown
// value wins over the legacy direct field.
func resolveMethod(cmd UpsertDeliveryCommand) string {
	if cmd.MethodSelect == "Otro" {
		return cmd.MethodOther
	}
	if cmd.MethodSelect != "" {
		return cmd.MethodSelect
	}
	return cmd.Method
}
