package models

const (
	OfferStatusActive   = "active"
	OfferStatusInactive = "inactive"
)

// Offer is one row of the "offers" sheet: [id, title, description, status].
// Status is kept verbatim; the aggregation store matches it against
// "active" case-sensitively while the popup matches case-insensitively,
// and that asymmetry is intentional (see DESIGN.md).
type Offer struct {
	ID          string
	Title       string
	Description string
	Status      string
}

func OfferFromRow(row []interface{}) Offer {
	return Offer{
		ID:          CellString(cellAt(row, 0)),
		Title:       CellString(cellAt(row, 1)),
		Description: CellString(cellAt(row, 2)),
		Status:      CellString(cellAt(row, 3)),
	}
}

func (o Offer) Row() []interface{} {
	return []interface{}{o.ID, o.Title, o.Description, o.Status}
}

// ToggledStatus flips between the two canonical values. Anything that
// is not exactly "active" counts as inactive.
func (o Offer) ToggledStatus() string {
	if o.Status == OfferStatusActive {
		return OfferStatusInactive
	}
	return OfferStatusActive
}
