// Package part models the spare-part catalog. Stock and price are stored
// as free-form text because the catalog was bulk-imported from spreadsheets;
// parsing happens on demand.
package part

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/utils"
)

type Part struct {
	id        uint
	name      string
	quantity  string
	stock     string
	category  string
	price     string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewPart(name, quantity, stock, category, price string, active bool) (*Part, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("part name is required")
	}

	now := biztime.NowUTC()
	return &Part{
		name:      name,
		quantity:  quantity,
		stock:     stock,
		category:  strings.TrimSpace(category),
		price:     price,
		active:    active,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPart(
	id uint,
	name, quantity, stock, category, price string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Part, error) {
	if id == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}

	return &Part{
		id:        id,
		name:      name,
		quantity:  quantity,
		stock:     stock,
		category:  category,
		price:     price,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Part) ID() uint             { return p.id }
func (p *Part) Name() string         { return p.name }
func (p *Part) Quantity() string     { return p.quantity }
func (p *Part) Stock() string        { return p.stock }
func (p *Part) Category() string     { return p.category }
func (p *Part) Price() string        { return p.price }
func (p *Part) IsActive() bool       { return p.active }
func (p *Part) CreatedAt() time.Time { return p.createdAt }
func (p *Part) UpdatedAt() time.Time { return p.updatedAt }

func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID already set")
	}
	if id == 0 {
		return fmt.Errorf("part ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update replaces the editable fields. When the resulting stock is a finite
// zero the part is deactivated, unless the caller explicitly set the active
// flag in the same request.
func (p *Part) Update(name, quantity, stock, category, price string, active bool, activeSet bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("part name is required")
	}

	p.name = name
	p.quantity = quantity
	p.stock = stock
	p.category = strings.TrimSpace(category)
	p.price = price
	p.active = active

	if !activeSet && !p.HasInfiniteStock() && p.StockCount() == 0 {
		p.active = false
	}

	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Part) Deactivate() {
	p.active = false
	p.updatedAt = biztime.NowUTC()
}

// HasInfiniteStock reports whether the stock text marks unlimited stock.
func (p *Part) HasInfiniteStock() bool {
	return utils.IsInfiniteStock(p.stock)
}

// StockCount parses the stock text into an integer count. Junk characters
// are stripped; unparseable stock counts as zero.
func (p *Part) StockCount() int {
	return ParseStockCount(p.stock)
}

// UnitPrice parses the price text into a number. Returns 0 and false when
// the price cannot be interpreted.
func (p *Part) UnitPrice() (float64, bool) {
	return utils.ParseNumberLike(p.price)
}

// ParseStockCount strips non-digit characters from a stock text and parses
// the rest. Unparseable input yields zero.
func ParseStockCount(stock string) int {
	var b strings.Builder
	for _, r := range stock {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
