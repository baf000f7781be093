package rowstore

import "context"

// Sheet names served by the remote spreadsheet endpoint.
const (
	SheetMenu       = "menu"
	SheetRooms      = "rooms"
	SheetRoomImages = "roomImages"
	SheetImages     = "images"
	SheetOffers     = "offers"
	SheetReviews    = "reviews"
)

var AllSheets = []string{
	SheetMenu, SheetRooms, SheetRoomImages, SheetImages, SheetOffers, SheetReviews,
}

// Request is the single RPC shape the sheet endpoint understands.
// Row positions are 1-based and include the header row, so the first
// data row of a sheet sits at index 2.
type Request struct {
	Action      string        `json:"action"`
	Sheet       string        `json:"sheet,omitempty"`
	Row         []interface{} `json:"row,omitempty"`
	RowIndex    int           `json:"rowIndex,omitempty"`
	Email       string        `json:"email,omitempty"`
	Password    string        `json:"password,omitempty"`
	NewPassword string        `json:"newPassword,omitempty"`
}

// Store is the row-store surface the rest of the app depends on.
// Client talks to the real spreadsheet endpoint, Memory backs tests
// and local development.
type Store interface {
	Get(ctx context.Context, sheet string) ([][]interface{}, error)
	Add(ctx context.Context, sheet string, row []interface{}) error
	Update(ctx context.Context, sheet string, rowIndex int, row []interface{}) error
	Delete(ctx context.Context, sheet string, rowIndex int) error
	Login(ctx context.Context, email, password string) (bool, error)
	UpdatePassword(ctx context.Context, email, newPassword string) error
}
