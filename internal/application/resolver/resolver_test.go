package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/printer"
	"fixdesk/internal/domain/technician"
)

func reconstructClient(t *testing.T, id uint, fullName, nationalID string) *client.Client {
	t.Helper()
	first, last := client.SplitFullName(fullName)
	c, err := client.ReconstructClient(id, fullName, first, last, nationalID, "", "", "", "", "", time.Now(), time.Now())
	require.NoError(t, err)
	return c
}

func reconstructTechnician(t *testing.T, id uint, email string, active bool) *technician.Technician {
	t.Helper()
	first, last := technician.DeriveNameFromEmail(email)
	tech, err := technician.ReconstructTechnician(id, first, last, email, active, time.Now(), time.Now())
	require.NoError(t, err)
	return tech
}

func TestResolveClient_MatchesByDocumentFirst(t *testing.T) {
	existing := reconstructClient(t, 5, "Juan Pérez", "30.123.456")

	clients := &mockClientRepository{
		FindByNationalIDFunc: func(ctx context.Context, nationalID string) (*client.Client, error) {
			assert.Equal(t, "30.123.456", nationalID)
			return existing, nil
		},
		FindByFullNameFunc: func(ctx context.Context, fullName string) (*client.Client, error) {
			t.Fatal("name lookup should not run when the document matches")
			return nil, nil
		},
	}

	svc := NewService(clients, &mockPrinterRepository{}, &mockTechnicianRepository{}, nopLogger{})

	// Raw digits must be normalized before the lookup.
	got, err := svc.ResolveClient(context.Background(), ClientInput{FullName: "Otro Nombre", NationalID: "30123456"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID())
}

func TestResolveClient_FallsBackToName(t *testing.T) {
	existing := reconstructClient(t, 9, "Ana García", "")

	clients := &mockClientRepository{
		FindByFullNameFunc: func(ctx context.Context, fullName string) (*client.Client, error) {
			assert.Equal(t, "Ana García", fullName)
			return existing, nil
		},
	}

	svc := NewService(clients, &mockPrinterRepository{}, &mockTechnicianRepository{}, nopLogger{})

	got, err := svc.ResolveClient(context.Background(), ClientInput{FullName: "Ana García"})
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.ID())
}

func TestResolveClient_CreatesWhenMissing(t *testing.T) {
	var saved *client.Client
	clients := &mockClientRepository{
		SaveFunc: func(ctx context.Context, c *client.Client) error {
			saved = c
			return c.SetID(77)
		},
	}

	svc := NewService(clients, &mockPrinterRepository{}, &mockTechnicianRepository{}, nopLogger{})

	got, err := svc.ResolveClient(context.Background(), ClientInput{
		FullName:   "Luis Gómez Díaz",
		NationalID: "20123456789",
		Whatsapp:   "+54 9 11 5555-5555",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(77), got.ID())
	assert.Equal(t, "Luis", got.FirstName())
	assert.Equal(t, "Gómez Díaz", got.LastName())
	assert.Equal(t, "20-12345678-9", got.NationalID())
}

func TestResolveClient_DuplicateInsertBecomesFetch(t *testing.T) {
	winner := reconstructClient(t, 3, "Juan Pérez", "")

	nameLookups := 0
	clients := &mockClientRepository{
		FindByFullNameFunc: func(ctx context.Context, fullName string) (*client.Client, error) {
			nameLookups++
			if nameLookups == 1 {
				return nil, nil
			}
			return winner, nil
		},
		SaveFunc: func(ctx context.Context, c *client.Client) error {
			return assert.AnError
		},
	}
	clients.SaveFunc = func(ctx context.Context, c *client.Client) error {
		return errDuplicate{}
	}

	svc := NewService(clients, &mockPrinterRepository{}, &mockTechnicianRepository{}, nopLogger{})

	got, err := svc.ResolveClient(context.Background(), ClientInput{FullName: "Juan Pérez"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID())
}

func TestResolvePrinter_SerialWins(t *testing.T) {
	existing, err := printer.ReconstructPrinter(4, "Ender 3", "Ender 3", "SN-1", "", time.Now(), time.Now())
	require.NoError(t, err)

	printers := &mockPrinterRepository{
		FindBySerialFunc: func(ctx context.Context, serial string) (*printer.Printer, error) {
			assert.Equal(t, "SN-1", serial)
			return existing, nil
		},
	}

	svc := NewService(&mockClientRepository{}, printers, &mockTechnicianRepository{}, nopLogger{})

	got, err := svc.ResolvePrinter(context.Background(), PrinterInput{Model: "Otra", Serial: "SN-1"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), got.ID())
}

func TestResolvePrinter_CreatesWithTempSerial(t *testing.T) {
	printers := &mockPrinterRepository{
		SaveFunc: func(ctx context.Context, p *printer.Printer) error {
			return p.SetID(12)
		},
	}

	svc := NewService(&mockClientRepository{}, printers, &mockTechnicianRepository{}, nopLogger{})

	got, err := svc.ResolvePrinter(context.Background(), PrinterInput{Model: "Prusa MK3"})
	require.NoError(t, err)
	assert.Equal(t, uint(12), got.ID())
	assert.Equal(t, "Prusa MK3", got.Machine(), "machine mirrors model")
	assert.Contains(t, got.SerialNumber(), "TEMP-")
}

func TestResolveAuthor_ByTechnicianID(t *testing.T) {
	active := reconstructTechnician(t, 2, "maria.lopez@taller.com", true)

	technicians := &mockTechnicianRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*technician.Technician, error) {
			assert.Equal(t, uint(2), id)
			return active, nil
		},
	}

	svc := NewService(&mockClientRepository{}, &mockPrinterRepository{}, technicians, nopLogger{})

	id := uint(2)
	got, err := svc.ResolveAuthor(context.Background(), AuthorRef{TechnicianID: &id})
	require.NoError(t, err)
	assert.Equal(t, "maria.lopez@taller.com", got.Email())
}

func TestResolveAuthor_InactiveTechnician(t *testing.T) {
	inactive := reconstructTechnician(t, 2, "ex@taller.com", false)

	technicians := &mockTechnicianRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*technician.Technician, error) {
			return inactive, nil
		},
	}

	svc := NewService(&mockClientRepository{}, &mockPrinterRepository{}, technicians, nopLogger{})

	_, err := svc.ResolveAuthor(context.Background(), AuthorRef{Email: "ex@taller.com"})
	assert.ErrorIs(t, err, ErrAuthorInactive)
}

func TestResolveAuthor_SyncsFromEmail(t *testing.T) {
	technicians := &mockTechnicianRepository{
		SaveFunc: func(ctx context.Context, tech *technician.Technician) error {
			return tech.SetID(30)
		},
	}

	svc := NewService(&mockClientRepository{}, &mockPrinterRepository{}, technicians, nopLogger{})

	got, err := svc.ResolveAuthor(context.Background(), AuthorRef{Email: "pedro.gonzalez@taller.com"})
	require.NoError(t, err)
	assert.Equal(t, uint(30), got.ID())
	assert.Equal(t, "Pedro", got.FirstName())
	assert.Equal(t, "Gonzalez", got.LastName())
	assert.True(t, got.IsActive())
}

func TestResolveAuthor_NoIdentity(t *testing.T) {
	svc := NewService(&mockClientRepository{}, &mockPrinterRepository{}, &mockTechnicianRepository{}, nopLogger{})

	_, err := svc.ResolveAuthor(context.Background(), AuthorRef{})
	assert.ErrorIs(t, err, ErrAuthorUnknown)
}

// errDuplicate mimics the driver's duplicate entry error text.
type errDuplicate struct{}

func (errDuplicate) Error() string {
	return "Error 1062 (23000): Duplicate entry 'Juan Pérez' for key 'idx_clientes_cliente'"
}
