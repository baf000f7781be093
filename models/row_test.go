package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellDecodingToleratesMixedScalars(t *testing.T) {
	// Spreadsheet cells come back as numbers or strings depending on
	// how the sheet formatted them.
	item := MenuItemFromRow([]interface{}{1771200000000.0, "Soup", "Tomato", "50", nil})
	assert.Equal(t, "1771200000000", item.ID)
	assert.Equal(t, "Soup", item.Category)
	assert.Equal(t, 50.0, item.Price)
	assert.Equal(t, "", item.Type)

	item = MenuItemFromRow([]interface{}{"8", "Soup", "Corn", 60.5})
	assert.Equal(t, "8", item.ID)
	assert.Equal(t, 60.5, item.Price)
}

func TestCellDecodingHandlesUntypedInts(t *testing.T) {
	// Cells that never crossed a JSON boundary keep their Go types:
	// seeded fixtures and freshly built rows carry plain ints.
	item := MenuItemFromRow([]interface{}{42, "Soup", "Tomato", 50})
	assert.Equal(t, "42", item.ID)
	assert.Equal(t, 50.0, item.Price)

	review := ReviewFromRow([]interface{}{"rv1", "Asha", "a@b.com", 4, "lovely", "2026-08-01"})
	assert.Equal(t, 4, review.Rating)

	assert.Equal(t, "7", CellString(int64(7)))
	assert.Equal(t, 7.0, CellFloat(int64(7)))
}

func TestShortRowsDecodeWithoutPanic(t *testing.T) {
	item := MenuItemFromRow([]interface{}{"1"})
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, "", item.Name)
	assert.Equal(t, 0.0, item.Price)

	review := ReviewFromRow(nil)
	assert.Equal(t, "", review.ID)
}

func TestOfferToggledStatus(t *testing.T) {
	assert.Equal(t, "inactive", Offer{Status: "active"}.ToggledStatus())
	assert.Equal(t, "active", Offer{Status: "inactive"}.ToggledStatus())
	// anything that is not exactly "active" counts as inactive
	assert.Equal(t, "active", Offer{Status: "Active"}.ToggledStatus())
	assert.Equal(t, "active", Offer{Status: ""}.ToggledStatus())
}

func TestReviewStarsClamped(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Review{Rating: 3}.Stars())
	assert.Equal(t, "★☆☆☆☆", Review{Rating: 0}.Stars())
	assert.Equal(t, "★★★★★", Review{Rating: 9}.Stars())
}

func TestRowRoundTripKeepsPositions(t *testing.T) {
	r := Review{ID: "5", Name: "Asha", Email: "a@b.com", Rating: 4, Message: "lovely", Date: "2026-08-30"}
	row := r.Row()
	assert.Equal(t, r, ReviewFromRow(row))

	ri := RoomImage{ID: "1", RoomID: "R1", ImageURL: "u1"}
	assert.Equal(t, ri, RoomImageFromRow(ri.Row()))
}
