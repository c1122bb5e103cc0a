package entities

import "errors"

var (
	ErrItemMissingID          = errors.New("line item missing id")
	ErrItemMissingDesignation = errors.New("line item missing designation")
	ErrItemInvalidPosition    = errors.New("line item position must be >= 1")
	ErrItemInvalidUnitPrice   = errors.New("line item unit price must be >= 0")
	ErrItemInvalidQuantity    = errors.New("invalid line item quantity")
	ErrItemInvalidDiscount    = errors.New("line item discount must be within 0..100")
	ErrItemUnknownKind        = errors.New("unknown line item kind")
)

// ItemKind discriminates the three line item variants of an estimate.
//
// Domain notes:
//   - part and labor are priced rows.
//   - upcoming is a placeholder for recommended future work and is never
//     priced.

type ItemKind string

const (
	ItemKindPart     ItemKind = "part"
	ItemKindLabor    ItemKind = "labor"
	ItemKindUpcoming ItemKind = "upcoming"
)

// ItemPartition identifies the position sequence a line item belongs to.
//
// Positions are contiguous 1..N sequences kept independently per partition:
// parts and labor share the priced sequence, upcoming rows have their own.

type ItemPartition string

const (
	PartitionPriced   ItemPartition = "priced"
	PartitionUpcoming ItemPartition = "upcoming"
)

// LineItem is a single estimate row, a tagged variant on Kind.
//
// Storage model (DynamoDB, estimate_items table):
//   - PK: estimate_id
//   - SK: id
//
// Field usage per kind:
//   - part:     Designation, Description?, UnitPrice, Quantity (> 0)
//   - labor:    Designation, Description?, UnitPrice (flat fee or hourly
//     rate when CalculateByTime), Quantity? (minutes), Discount? (percent)
//   - upcoming: Designation, Description?; all pricing fields ignored
//
// Kind is immutable after creation; changing a row's kind means removing it
// and inserting a fresh row in the target partition.
type LineItem struct {
	ID              string   `json:"id"`
	Kind            ItemKind `json:"kind"`
	Designation     string   `json:"designation"`
	Description     string   `json:"description,omitempty"`
	UnitPrice       float64  `json:"unitPrice"`
	Quantity        *int     `json:"quantity,omitempty"`
	CalculateByTime bool     `json:"calculateByTime,omitempty"`
	Discount        *int     `json:"discount,omitempty"`
	Position        int      `json:"position"`
}

// Partition derives the ordering partition from the item kind.
func (i LineItem) Partition() ItemPartition {
	if i.Kind == ItemKindUpcoming {
		return PartitionUpcoming
	}
	return PartitionPriced
}

// CategoryRank is the fixed display precedence: parts first, then labor,
// then upcoming work. Independent of Position.
func (i LineItem) CategoryRank() int {
	switch i.Kind {
	case ItemKindPart:
		return 0
	case ItemKindLabor:
		return 1
	default:
		return 2
	}
}

// Validate checks per-kind field constraints. Position consistency across
// the whole array is the ordering package's concern, not the item's.
func (i LineItem) Validate() error {
	if i.ID == "" {
		return ErrItemMissingID
	}
	if i.Designation == "" {
		return ErrItemMissingDesignation
	}
	if i.Position < 1 {
		return ErrItemInvalidPosition
	}
	switch i.Kind {
	case ItemKindPart:
		if i.UnitPrice < 0 {
			return ErrItemInvalidUnitPrice
		}
		if i.Quantity == nil || *i.Quantity <= 0 {
			return ErrItemInvalidQuantity
		}
	case ItemKindLabor:
		if i.UnitPrice < 0 {
			return ErrItemInvalidUnitPrice
		}
		if i.Quantity != nil && *i.Quantity < 0 {
			return ErrItemInvalidQuantity
		}
		if i.Discount != nil && (*i.Discount < 0 || *i.Discount > 100) {
			return ErrItemInvalidDiscount
		}
	case ItemKindUpcoming:
		// Never priced; pricing fields are ignored wherever they matter.
	default:
		return ErrItemUnknownKind
	}
	return nil
}
