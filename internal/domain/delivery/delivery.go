package delivery

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/biztime"
)

// Delivery holds the hand-back arrangement for a ticket: how the machine
// goes back to the client and whether it was paid. One row per ticket.
type Delivery struct {
	id             uint
	ticketID       uint
	shippingCost   string
	additionalInfo string
	method         string
	paymentMethod  string
	paid           string
	deliveryDate   string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewDelivery(ticketID uint) (*Delivery, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	now := biztime.NowUTC()
	return &Delivery{
		ticketID:     ticketID,
		deliveryDate: biztime.FormatInBizTimezone(now, "2006-01-02"),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructDelivery(
	id uint,
	ticketID uint,
	shippingCost, additionalInfo, method, paymentMethod, paid, deliveryDate string,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	if id == 0 {
		return nil, fmt.Errorf("delivery ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Delivery{
		id:             id,
		ticketID:       ticketID,
		shippingCost:   shippingCost,
		additionalInfo: additionalInfo,
		method:         method,
		paymentMethod:  paymentMethod,
		paid:           paid,
		deliveryDate:   deliveryDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (d *Delivery) ID() uint               { return d.id }
func (d *Delivery) TicketID() uint         { return d.ticketID }
func (d *Delivery) ShippingCost() string   { return d.shippingCost }
func (d *Delivery) AdditionalInfo() string { return d.additionalInfo }
func (d *Delivery) Method() string         { return d.method }
func (d *Delivery) PaymentMethod() string  { return d.paymentMethod }
func (d *Delivery) Paid() string           { return d.paid }
func (d *Delivery) DeliveryDate() string   { return d.deliveryDate }
func (d *Delivery) CreatedAt() time.Time   { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time   { return d.updatedAt }

func (d *Delivery) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("delivery ID already set")
	}
	if id == 0 {
		return fmt.Errorf("delivery ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Delivery) SetShippingCost(cost string) {
	d.shippingCost = cost
	d.updatedAt = biztime.NowUTC()
}

func (d *Delivery) SetAdditionalInfo(info string) {
	d.additionalInfo = info
	d.updatedAt = biztime.NowUTC()
}

func (d *Delivery) SetMethod(method string) {
	d.method = method
	d.updatedAt = biztime.NowUTC()
}

func (d *Delivery) SetPaymentMethod(method string) {
	d.paymentMethod = method
	d.updatedAt = biztime.NowUTC()
}

func (d *Delivery) SetPaid(paid string) {
	d.paid = paid
	d.updatedAt = biztime.NowUTC()
}

// EnsureDeliveryDate stamps today's date when no delivery date was recorded.
func (d *Delivery) EnsureDeliveryDate() {
	if d.deliveryDate == "" {
		d.deliveryDate = biztime.FormatInBizTimezone(biztime.NowUTC(), "2006-01-02")
		d.updatedAt = biztime.NowUTC()
	}
}
