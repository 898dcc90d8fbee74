package budget

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/biztime"
)

// Budget is the repair quote header for a ticket. A ticket is supposed to
// have a single budget; when historical duplicates exist the most recent one
// (highest id) is authoritative and older rows get cleaned up on update.
type Budget struct {
	id             uint
	ticketID       uint
	amount         string
	link           string
	approved       string
	warrantyActive string
	coversWarranty string
	adminNotes     string
	budgetDate     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBudget(ticketID uint) (*Budget, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	now := biztime.NowUTC()
	return &Budget{
		ticketID:   ticketID,
		budgetDate: &now,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBudget(
	id uint,
	ticketID uint,
	amount, link, approved, warrantyActive, coversWarranty, adminNotes string,
	budgetDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Budget, error) {
	if id == 0 {
		return nil, fmt.Errorf("budget ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Budget{
		id:             id,
		ticketID:       ticketID,
		amount:         amount,
		link:           link,
		approved:       approved,
		warrantyActive: warrantyActive,
		coversWarranty: coversWarranty,
		adminNotes:     adminNotes,
		budgetDate:     budgetDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (b *Budget) ID() uint               { return b.id }
func (b *Budget) TicketID() uint         { return b.ticketID }
func (b *Budget) Amount() string         { return b.amount }
func (b *Budget) Link() string           { return b.link }
func (b *Budget) Approved() string       { return b.approved }
func (b *Budget) WarrantyActive() string { return b.warrantyActive }
func (b *Budget) CoversWarranty() string { return b.coversWarranty }
func (b *Budget) AdminNotes() string     { return b.adminNotes }
func (b *Budget) BudgetDate() *time.Time { return b.budgetDate }
func (b *Budget) CreatedAt() time.Time   { return b.createdAt }
func (b *Budget) UpdatedAt() time.Time   { return b.updatedAt }

func (b *Budget) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("budget ID already set")
	}
	if id == 0 {
		return fmt.Errorf("budget ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Budget) SetAmount(amount string) {
	b.amount = amount
	b.updatedAt = biztime.NowUTC()
}

func (b *Budget) SetLink(link string) {
	b.link = link
	b.updatedAt = biztime.NowUTC()
}

func (b *Budget) SetApproved(approved string) {
	b.approved = approved
	b.updatedAt = biztime.NowUTC()
}

func (b *Budget) SetWarrantyActive(warrantyActive string) {
	b.warrantyActive = warrantyActive
	b.updatedAt = biztime.NowUTC()
}

func (b *Budget) SetCoversWarranty(coversWarranty string) {
	b.coversWarranty = coversWarranty
	b.updatedAt = biztime.NowUTC()
}

func (b *Budget) SetAdminNotes(notes string) {
	b.adminNotes = notes
	b.updatedAt = biztime.NowUTC()
}

// EnsureBudgetDate stamps the budget date when it was never set.
func (b *Budget) EnsureBudgetDate() {
	if b.budgetDate == nil {
		now := biztime.NowUTC()
		b.budgetDate = &now
		b.updatedAt = now
	}
}

func (b *Budget) SetBudgetDate(date time.Time) {
	b.budgetDate = &date
	b.updatedAt = biztime.NowUTC()
}
