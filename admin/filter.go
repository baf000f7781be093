package admin

import (
	"strconv"
	"strings"

	"github.com/evaani/hotel-app/models"
)

// Dashboard filters. All of them are pure views over the in-memory
// tables, recomputed per request without touching the stored rows.
// Text matches are case-insensitive substring, prices are inclusive
// min/max; values come straight off the query string so empty means
// "no constraint".

type MenuFilter struct {
	Name     string
	Category string
	MinPrice string
	MaxPrice string
}

func (f MenuFilter) Apply(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !containsFold(item.Name, f.Name) {
			continue
		}
		if !containsFold(item.Category, f.Category) {
			continue
		}
		if !inPriceRange(item.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		out = append(out, item)
	}
	return out
}

type RoomFilter struct {
	Name     string
	MinPrice string
	MaxPrice string
}

func (f RoomFilter) Apply(rooms []models.Room) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if !containsFold(room.Name, f.Name) {
			continue
		}
		if !inPriceRange(room.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		out = append(out, room)
	}
	return out
}

type ImageFilter struct {
	Title string
}

func (f ImageFilter) Apply(images []models.GalleryImage) []models.GalleryImage {
	out := make([]models.GalleryImage, 0, len(images))
	for _, img := range images {
		if containsFold(img.Title, f.Title) {
			out = append(out, img)
		}
	}
	return out
}

// OfferFilter is "all", "active" or "inactive". The dashboard list
// matches status loosely (lowercased), so a capitalized "Active" shows
// up under the active tab even though the public site won't render it.
type OfferFilter string

func (f OfferFilter) Apply(offers []models.Offer) []models.Offer {
	if f == "" || f == "all" {
		return offers
	}
	out := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		active := strings.ToLower(o.Status) == models.OfferStatusActive
		if (f == "active") == active {
			out = append(out, o)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inPriceRange(price float64, min, max string) bool {
	if min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil && price < v {
			return false
		}
	}
	if max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil && price > v {
			return false
		}
	}
	return true
}
