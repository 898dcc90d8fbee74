// Package resolver finds or creates the entities a ticket references:
// clients, printers and the acting technician. Lookups run inside the
// caller's transaction; unique indexes back every create, and an insert that
// loses a race is retried as a fetch.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/domain/technician"
	apperrors "fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

var (
	// ErrAuthorUnknown means the acting user could not be matched or
	// synced to a technician.
	ErrAuthorUnknown = errors.New("author could not be resolved")

	// ErrAuthorInactive means the matched technician is deactivated.
	ErrAuthorInactive = errors.New("author is inactive")
)

type ClientInput struct {
	FullName   string
	NationalID string
	Whatsapp   string
	Email      string
}

type PrinterInput struct {
	Model      string
	Machine    string
	Serial     string
	NozzleSize string
}

// AuthorRef identifies the acting user: an explicit technician id from the
// request, or the session email.
type AuthorRef struct {
	TechnicianID *uint
	Email        string
}

type Service struct {
	clients     client.ClientRepository
	printers    printer.PrinterRepository
	technicians technician.TechnicianRepository
	logger      logger.Interface
}

func NewService(
	clients client.ClientRepository,
	printers printer.PrinterRepository,
	technicians technician.TechnicianRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		clients:     clients,
		printers:    printers,
		technicians: technicians,
		logger:      logger,
	}
}

// ResolveClient finds an existing client by normalized document, then by
// case-insensitive full name, and creates one when neither matches.
func (s *Service) ResolveClient(ctx context.Context, input ClientInput) (*client.Client, error) {
	nationalID := client.NormalizeNationalID(input.NationalID)

	if nationalID != "" {
		found, err := s.clients.FindByNationalID(ctx, nationalID)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	found, err := s.clients.FindByFullName(ctx, input.FullName)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}

	c, err := client.NewClient(input.FullName, input.NationalID, input.Whatsapp, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := s.clients.Save(ctx, c); err != nil {
		if apperrors.IsDuplicateError(err) {
			// Lost the race against a concurrent insert; the winner's row
			// is the one we wanted.
			return s.refetchClient(ctx, nationalID, input.FullName)
		}
		return nil, err
	}

	s.logger.Infow("client created", "client_id", c.ID(), "name", c.FullName())
	return c, nil
}

func (s *Service) refetchClient(ctx context.Context, nationalID, fullName string) (*client.Client, error) {
	if nationalID != "" {
		found, err := s.clients.FindByNationalID(ctx, nationalID)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	found, err := s.clients.FindByFullName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("client vanished after duplicate insert")
	}
	return found, nil
}

// ResolvePrinter finds an existing printer by serial, then by the model and
// machine pair, and registers one when neither matches. Printers registered
// without a serial get a generated placeholder.
func (s *Service) ResolvePrinter(ctx context.Context, input PrinterInput) (*printer.Printer, error) {
	if input.Serial != "" {
		found, err := s.printers.FindBySerial(ctx, input.Serial)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	model := input.Model
	machine := input.Machine
	if model == "" {
		model = machine
	}
	if machine == "" {
		machine = model
	}
	if model != "" {
		found, err := s.printers.FindByModelMachine(ctx, model, machine)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	p, err := printer.NewPrinter(input.Model, input.Machine, input.Serial, input.NozzleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to register printer: %w", err)
	}

	if err := s.printers.Save(ctx, p); err != nil {
		if apperrors.IsDuplicateError(err) && input.Serial != "" {
			return s.printers.FindBySerial(ctx, input.Serial)
		}
		return nil, err
	}

	s.logger.Infow("printer registered", "printer_id", p.ID(), "serial", p.SerialNumber())
	return p, nil
}

// ResolveAuthor maps the acting user to a technician. An explicit
// technician id wins; otherwise the session email is matched
// case-insensitively, and an unknown email gets a technician synced from it.
func (s *Service) ResolveAuthor(ctx context.Context, ref AuthorRef) (*technician.Technician, error) {
	if ref.TechnicianID != nil && *ref.TechnicianID != 0 {
		t, err := s.technicians.FindByID(ctx, *ref.TechnicianID)
		if err != nil {
			return nil, ErrAuthorUnknown
		}
		if !t.IsActive() {
			return nil, ErrAuthorInactive
		}
		return t, nil
	}

	if ref.Email == "" {
		return nil, ErrAuthorUnknown
	}

	t, err := s.technicians.FindByEmail(ctx, ref.Email)
	if err != nil {
		return nil, err
	}
	if t != nil {
		if !t.IsActive() {
			return nil, ErrAuthorInactive
		}
		return t, nil
	}

	t, err = technician.NewTechnicianFromEmail(ref.Email)
	if err != nil {
		return nil, ErrAuthorUnknown
	}

	if err := s.technicians.Save(ctx, t); err != nil {
		if apperrors.IsDuplicateError(err) {
			existing, ferr := s.technicians.FindByEmail(ctx, ref.Email)
			if ferr != nil || existing == nil {
				return nil, ErrAuthorUnknown
			}
			if !existing.IsActive() {
				return nil, ErrAuthorInactive
			}
			return existing, nil
		}
		return nil, err
	}

	s.logger.Infow("technician synced from session", "technician_id", t.ID(), "email", t.Email())
	return t, nil
}
