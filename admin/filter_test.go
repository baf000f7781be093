package admin

import (
	"testing"

	"github.com/evaani/hotel-app/models"
	"github.com/stretchr/testify/assert"
)

var menuFixture = []models.MenuItem{
	{ID: "1", Category: "Soup", Name: "Tomato Soup", Price: 50},
	{ID: "2", Category: "Soup", Name: "Corn Soup", Price: 60},
	{ID: "3", Category: "Mains", Name: "Paneer Tikka", Price: 220},
}

func TestMenuFilterSubstringCaseInsensitive(t *testing.T) {
	got := MenuFilter{Name: "soup"}.Apply(menuFixture)
	assert.Len(t, got, 2)

	got = MenuFilter{Category: "MAIN"}.Apply(menuFixture)
	assert.Len(t, got, 1)
	assert.Equal(t, "Paneer Tikka", got[0].Name)
}

func TestMenuFilterPriceRangeInclusive(t *testing.T) {
	got := MenuFilter{MinPrice: "60", MaxPrice: "220"}.Apply(menuFixture)
	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	// unparseable bounds are ignored, not errors
	got = MenuFilter{MinPrice: "cheap"}.Apply(menuFixture)
	assert.Len(t, got, 3)
}

func TestEmptyFilterKeepsEverything(t *testing.T) {
	assert.Len(t, MenuFilter{}.Apply(menuFixture), 3)
}

func TestRoomFilter(t *testing.T) {
	rooms := []models.Room{
		{ID: "R1", Name: "Deluxe", Price: 4500},
		{ID: "R2", Name: "Suite", Price: 8000},
	}
	got := RoomFilter{Name: "del", MaxPrice: "5000"}.Apply(rooms)
	assert.Len(t, got, 1)
	assert.Equal(t, "R1", got[0].ID)
}

func TestImageFilterByTitle(t *testing.T) {
	images := []models.GalleryImage{
		{ID: "1", Title: "Garden at dusk"},
		{ID: "2", Title: "Lobby"},
	}
	got := ImageFilter{Title: "garden"}.Apply(images)
	assert.Len(t, got, 1)
}

func TestOfferFilterMatchesLoosely(t *testing.T) {
	offers := []models.Offer{
		{ID: "1", Status: "active"},
		{ID: "2", Status: "Active"}, // dashboard counts this as active
		{ID: "3", Status: "inactive"},
		{ID: "4", Status: "whatever"},
	}

	assert.Len(t, OfferFilter("all").Apply(offers), 4)
	assert.Len(t, OfferFilter("").Apply(offers), 4)

	active := OfferFilter("active").Apply(offers)
	assert.Len(t, active, 2)

	inactive := OfferFilter("inactive").Apply(offers)
	assert.Len(t, inactive, 2)
	assert.Equal(t, "3", inactive[0].ID)
	assert.Equal(t, "4", inactive[1].ID)
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	before := make([]models.MenuItem, len(menuFixture))
	copy(before, menuFixture)
	MenuFilter{Name: "soup", MinPrice: "55"}.Apply(menuFixture)
	assert.Equal(t, before, menuFixture)
}
