package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixdesk/internal/domain/client"
	"fixdesk/internal/domain/delivery"
	"fixdesk/internal/domain/ticket"
)

func existingTicket(t *testing.T, id uint, number int64) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(
		id, number, 7, nil, nil,
		"1/15/2025, 10:30:00 AM", "Pendiente",
		"", "", "", "", "", "", "", "",
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func existingDelivery(t *testing.T, id, ticketID uint, deliveryDate string) *delivery.Delivery {
	t.Helper()
	now := time.Now()
	d, err := delivery.ReconstructDelivery(id, ticketID, "", "", "", "", "", deliveryDate, now, now)
	require.NoError(t, err)
	return d
}

type upsertDeliveryDeps struct {
	tickets    *mockTicketRepository
	clients    *mockClientRepository
	deliveries *mockDeliveryRepository
}

func newUpsertDeliveryDeps(t *testing.T) *upsertDeliveryDeps {
	t.Helper()
	return &upsertDeliveryDeps{
		tickets: &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return existingTicket(t, id, 42), nil
			},
		},
		clients:    &mockClientRepository{},
		deliveries: &mockDeliveryRepository{},
	}
}

func (d *upsertDeliveryDeps) build() *UpsertDeliveryUseCase {
	return NewUpsertDeliveryUseCase(d.tickets, d.clients, d.deliveries, fakeTx{}, nopLogger{})
}

func TestUpsertDelivery_CreatesRowWithDeliveryDate(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)

	var saved *delivery.Delivery
	deps.deliveries.SaveFunc = func(ctx context.Context, d *delivery.Delivery) error {
		saved = d
		return d.SetID(9)
	}

	result, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{
		TicketID:      5,
		ShippingCost:  "$ 20.000,50",
		MethodSelect:  "Delivery",
		PaymentMethod: "Efectivo",
		Paid:          "true",
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, uint(9), result.DeliveryID)
	require.NotNil(t, saved)
	assert.Equal(t, "20.000,50", saved.ShippingCost())
	assert.Equal(t, "Delivery", saved.Method())
	assert.Equal(t, "true", saved.Paid())
	assert.NotEmpty(t, saved.DeliveryDate())
}

func TestUpsertDelivery_UpdatesLatestAndPrunesDuplicates(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)
	deps.deliveries.FindLatestByTicketIDFunc = func(ctx context.Context, ticketID uint) (*delivery.Delivery, error) {
		return existingDelivery(t, 9, ticketID, "2025-01-15"), nil
	}

	var updated *delivery.Delivery
	deps.deliveries.UpdateFunc = func(ctx context.Context, d *delivery.Delivery) error {
		updated = d
		return nil
	}
	var prunedTicketID, keptID uint
	deps.deliveries.DeleteOlderDuplicatesFunc = func(ctx context.Context, ticketID, keepID uint) error {
		prunedTicketID = ticketID
		keptID = keepID
		return nil
	}

	result, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{
		TicketID: 5,
		Paid:     "false",
	})

	require.NoError(t, err)
	assert.False(t, result.Created)
	require.NotNil(t, updated)
	// The recorded delivery date survives the overwrite.
	assert.Equal(t, "2025-01-15", updated.DeliveryDate())
	assert.Equal(t, uint(5), prunedTicketID)
	assert.Equal(t, uint(9), keptID)
}

func TestUpsertDelivery_OtherMethodUsesFreeText(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)

	var saved *delivery.Delivery
	deps.deliveries.SaveFunc = func(ctx context.Context, d *delivery.Delivery) error {
		saved = d
		return d.SetID(9)
	}

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{
		TicketID:     5,
		MethodSelect: "Otro",
		MethodOther:  "Moto del primo",
	})

	require.NoError(t, err)
	assert.Equal(t, "Moto del primo", saved.Method())
}

func TestUpsertDelivery_LegacyMethodFieldAsFallback(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)

	var saved *delivery.Delivery
	deps.deliveries.SaveFunc = func(ctx context.Context, d *delivery.Delivery) error {
		saved = d
		return d.SetID(9)
	}

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{
		TicketID: 5,
		Method:   "Taller",
	})

	require.NoError(t, err)
	assert.Equal(t, "Taller", saved.Method())
}

func TestUpsertDelivery_UpdatesClientAddress(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)
	deps.clients.FindByIDFunc = func(ctx context.Context, id uint) (*client.Client, error) {
		now := time.Now()
		return client.ReconstructClient(
			7, "Juan Pérez", "Juan", "Pérez",
			"20-12345678-9", "+5491122334455", "juan@example.com",
			"", "Av. Siempre Viva 742", "Springfield", now, now,
		)
	}
	var updatedClient *client.Client
	deps.clients.UpdateFunc = func(ctx context.Context, c *client.Client) error {
		updatedClient = c
		return nil
	}

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{
		TicketID: 5,
		Address:  "Calle Falsa 123",
		Locality: "Rosario",
	})

	require.NoError(t, err)
	require.NotNil(t, updatedClient)
	assert.Equal(t, "Calle Falsa 123", updatedClient.Address())
	assert.Equal(t, "Rosario", updatedClient.Locality())
}

func TestUpsertDelivery_ClientAddressFailureDoesNotFail(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)
	deps.clients.FindByIDFunc = func(ctx context.Context, id uint) (*client.Client, error) {
		return nil, assert.AnError
	}

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{
		TicketID: 5,
		Address:  "Calle Falsa 123",
	})

	require.NoError(t, err)
}

func TestUpsertDelivery_MissingTicketID(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation_error")
}

func TestUpsertDelivery_UnknownTicket(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)
	deps.tickets.FindByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return nil, nil
	}

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{TicketID: 99})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_found")
}

func TestUpsertDelivery_TicketLookupErrorPropagates(t *testing.T) {
	deps := newUpsertDeliveryDeps(t)
	deps.tickets.FindByIDFunc = func(ctx context.Context, id uint) (*ticket.Ticket, error) {
		return nil, assert.AnError
	}

	_, err := deps.build().Execute(context.Background(), UpsertDeliveryCommand{TicketID: 99})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "not_found")
}
