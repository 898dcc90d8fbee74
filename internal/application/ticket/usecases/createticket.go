package usecases

import (
	"context"
	"io"

	"fixdesk/internal/application/resolver"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/storage"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Number int64

	ClientName  string
	NationalID  string
	Whatsapp    string
	ClientEmail string

	PrinterModel string
	Machine      string
	Serial       string
	NozzleSize   string

	TechnicianID  *uint
	State         string
	ClientNotes   string
	RequestBudget string

	// Optional image payloads. Uploads are best effort: a failed upload
	// is logged and never fails the creation.
	ImageMain   io.Reader
	ImageTicket io.Reader
	ImageExtra  io.Reader
}

type CreateTicketResult struct {
	TicketID uint
	Number   int64
	Stamp    string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	resolver   *resolver.Service
	txMgr      db.Transactor
	images     ImageStore
	notifier   EmailNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	resolverSvc *resolver.Service,
	txMgr db.Transactor,
	images ImageStore,
	notifier EmailNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		resolver:   resolverSvc,
		txMgr:      txMgr,
		images:     images,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.ClientName == "" {
		return nil, errors.NewValidationError("Falta el nombre del cliente")
	}
	if cmd.Number < 0 {
		return nil, errors.NewValidationError("Número de ticket inválido")
	}

	var created *ticket.Ticket
	var clientName, printerModel string

	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		cl, err := uc.resolver.ResolveClient(ctx, resolver.ClientInput{
			FullName:   cmd.ClientName,
			NationalID: cmd.NationalID,
			Whatsapp:   cmd.Whatsapp,
			Email:      cmd.ClientEmail,
		})
		if err != nil {
			return err
		}
		clientName = cl.FullName()

		var printerID *uint
		if cmd.PrinterModel != "" || cmd.Machine != "" || cmd.Serial != "" {
			pr, err := uc.resolver.ResolvePrinter(ctx, resolver.PrinterInput{
				Model:      cmd.PrinterModel,
				Machine:    cmd.Machine,
				Serial:     cmd.Serial,
				NozzleSize: cmd.NozzleSize,
			})
			if err != nil {
				return err
			}
			id := pr.ID()
			printerID = &id
			printerModel = pr.Model()
		}

		number := cmd.Number
		if number == 0 {
			maxNumber, err := uc.ticketRepo.MaxNumber(ctx)
			if err != nil {
				return err
			}
			number = maxNumber + 1
		}

		t, err := ticket.NewTicket(number, cl.ID(), cmd.TechnicianID, printerID, cmd.State, cmd.ClientNotes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if cmd.RequestBudget != "" {
			t.SetRequestBudget(cmd.RequestBudget)
		}

		if err := uc.ticketRepo.Save(ctx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.uploadImages(ctx, created, cmd)

	if uc.notifier != nil {
		if err := uc.notifier.SendTicketCreatedEmail(created.Number(), clientName, printerModel); err != nil {
			uc.logger.Warnw("ticket created email failed", "ticket", created.Number(), "error", err)
		}
	}

	uc.logger.Infow("ticket created", "ticket_id", created.ID(), "ticket", created.Number())

	return &CreateTicketResult{
		TicketID: created.ID(),
		Number:   created.Number(),
		Stamp:    created.Stamp(),
	}, nil
}

// uploadImages stores each provided image separately so one failed upload
// does not lose the others.
func (uc *CreateTicketUseCase) uploadImages(ctx context.Context, t *ticket.Ticket, cmd CreateTicketCommand) {
	if uc.images == nil {
		return
	}

	var mainURL, ticketURL, extraURL string
	if cmd.ImageMain != nil {
		url, err := uc.images.Save(ctx, storage.MainImageName(t.Number()), cmd.ImageMain)
		if err != nil {
			uc.logger.Warnw("main image upload failed", "ticket", t.Number(), "error", err)
		} else {
			mainURL = url
		}
	}
	if cmd.ImageTicket != nil {
		url, err := uc.images.Save(ctx, storage.TicketImageName(t.Number()), cmd.ImageTicket)
		if err != nil {
			uc.logger.Warnw("ticket image upload failed", "ticket", t.Number(), "error", err)
		} else {
			ticketURL = url
		}
	}
	if cmd.ImageExtra != nil {
		url, err := uc.images.Save(ctx, storage.ExtraImageName(t.Number()), cmd.ImageExtra)
		if err != nil {
			uc.logger.Warnw("extra image upload failed", "ticket", t.Number(), "error", err)
		} else {
			extraURL = url
		}
	}

	if mainURL == "" && ticketURL == "" && extraURL == "" {
		return
	}
	t.SetImages(mainURL, ticketURL, extraURL)
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to record image urls", "ticket", t.Number(), "error", err)
	}
}
