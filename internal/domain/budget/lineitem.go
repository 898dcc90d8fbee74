package budget

import "fmt"

// LineItem is one part on a budget with the quantity and the unit price
// snapshot taken when the line was saved. The snapshot keeps the quoted
// price stable when the catalog price changes later.
type LineItem struct {
	id        uint
	budgetID  uint
	partID    uint
	quantity  int
	unitPrice float64
}

func NewLineItem(budgetID, partID uint, quantity int, unitPrice float64) (*LineItem, error) {
	if budgetID == 0 {
		return nil, fmt.Errorf("budget ID is required")
	}
	if partID == 0 {
		return nil, fmt.Errorf("part ID is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	return &LineItem{
		budgetID:  budgetID,
		partID:    partID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func ReconstructLineItem(id, budgetID, partID uint, quantity int, unitPrice float64) (*LineItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("line item ID cannot be zero")
	}
	return &LineItem{
		id:        id,
		budgetID:  budgetID,
		partID:    partID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (li *LineItem) ID() uint           { return li.id }
func (li *LineItem) BudgetID() uint     { return li.budgetID }
func (li *LineItem) PartID() uint       { return li.partID }
func (li *LineItem) Quantity() int      { return li.quantity }
func (li *LineItem) UnitPrice() float64 { return li.unitPrice }

func (li *LineItem) SetID(id uint) error {
	if li.id != 0 {
		return fmt.Errorf("line item ID already set")
	}
	if id == 0 {
		return fmt.Errorf("line item ID cannot be zero")
	}
	li.id = id
	return nil
}
