package store

import (
	"context"
	"sync"

	"github.com/evaani/hotel-app/models"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/utils"
)

// Snapshot is the aggregated view published to every page: the six
// sheets with headers stripped plus the derived indexes. A snapshot is
// replaced wholesale on every (re)load, readers never see a half
// updated view.
type Snapshot struct {
	Menu       []models.MenuItem
	Rooms      []models.Room
	RoomImages []models.RoomImage
	Images     []models.GalleryImage
	Offers     []models.Offer
	Reviews    []models.Review

	// ImagesByRoomID groups image URLs by the roomId cell in sheet
	// order. Orphaned entries stay in the map, they just never render
	// because no room carries that id.
	ImagesByRoomID map[string][]string

	// MenuByCategory groups menu rows in scan order, blank category
	// falls back to "Uncategorized". Categories preserves first-seen
	// order since map iteration would shuffle the sections.
	MenuByCategory map[string][]models.MenuItem
	Categories     []string

	// ActiveOffers matches the status cell against "active" exactly.
	// The popup does its own case-insensitive match on an independent
	// fetch, the two on purpose do not agree (see DESIGN.md).
	ActiveOffers []models.Offer
}

const uncategorized = "Uncategorized"

// Store owns the batch fetch of all six sheets. One slow or failing
// sheet must not blank out the others, so every sheet resolves on its
// own and failures degrade to an empty table.
type Store struct {
	rs rowstore.Store

	mu      sync.RWMutex
	snap    Snapshot
	loading bool
	loadErr error
}

func New(rs rowstore.Store) *Store {
	return &Store{rs: rs, loading: true, snap: buildSnapshot(nil)}
}

// LoadAll fetches the six sheets concurrently and publishes a fresh
// snapshot. An individual fetch error empties that sheet only; the
// global error is set when the whole batch is torn down (context
// cancelled or deadline passed before the sheets settled).
func (s *Store) LoadAll(ctx context.Context) {
	raw := make(map[string][][]interface{}, len(rowstore.AllSheets))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, sheet := range rowstore.AllSheets {
		wg.Add(1)
		go func(sheet string) {
			defer wg.Done()
			rows, err := s.rs.Get(ctx, sheet)
			if err != nil {
				if utils.ErrorLogger != nil {
					utils.ErrorLogger.Printf("fetch %s failed: %v", sheet, err)
				}
				rows = nil
			}
			mu.Lock()
			raw[sheet] = stripHeader(rows)
			mu.Unlock()
		}(sheet)
	}
	wg.Wait()

	snap := buildSnapshot(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		// A torn-down batch only matters before the first snapshot
		// exists; later it must not clobber a good one.
		if s.loading {
			s.loading = false
			s.loadErr = err
		}
		return
	}
	s.snap = snap
	s.loading = false
	s.loadErr = nil
}

// Reload is the real re-fetch every mutating caller runs after its
// write lands. The caller's context is detached first: the client
// hanging up mid-mutation must not tear down the shared snapshot.
// Refresh below stays a no-op on purpose.
func (s *Store) Reload(ctx context.Context) {
	s.LoadAll(context.WithoutCancel(ctx))
}

// Refresh is a placeholder kept on the consumer-facing surface;
// calling it does nothing. Components that mutate data go through
// Reload themselves.
func (s *Store) Refresh() {}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Loading reports true until the first batch settles, then stays
// false for the life of the process.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err is only non-nil after a whole-batch failure; partial failures
// never set it.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// stripHeader drops row 0 (the label row). A sheet with only a header
// has no data.
func stripHeader(rows [][]interface{}) [][]interface{} {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

func buildSnapshot(raw map[string][][]interface{}) Snapshot {
	snap := Snapshot{
		Menu:           decodeMenu(raw[rowstore.SheetMenu]),
		Rooms:          decodeRooms(raw[rowstore.SheetRooms]),
		RoomImages:     decodeRoomImages(raw[rowstore.SheetRoomImages]),
		Images:         decodeImages(raw[rowstore.SheetImages]),
		Offers:         decodeOffers(raw[rowstore.SheetOffers]),
		Reviews:        decodeReviews(raw[rowstore.SheetReviews]),
		ImagesByRoomID: map[string][]string{},
		MenuByCategory: map[string][]models.MenuItem{},
	}

	for _, ri := range snap.RoomImages {
		snap.ImagesByRoomID[ri.RoomID] = append(snap.ImagesByRoomID[ri.RoomID], ri.ImageURL)
	}

	for _, item := range snap.Menu {
		cat := item.Category
		if cat == "" {
			cat = uncategorized
		}
		if _, seen := snap.MenuByCategory[cat]; !seen {
			snap.Categories = append(snap.Categories, cat)
		}
		snap.MenuByCategory[cat] = append(snap.MenuByCategory[cat], item)
	}

	for _, o := range snap.Offers {
		if o.Status == models.OfferStatusActive {
			snap.ActiveOffers = append(snap.ActiveOffers, o)
		}
	}

	return snap
}

func decodeMenu(rows [][]interface{}) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.MenuItemFromRow(r))
	}
	return out
}

func decodeRooms(rows [][]interface{}) []models.Room {
	out := make([]models.Room, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.RoomFromRow(r))
	}
	return out
}

func decodeRoomImages(rows [][]interface{}) []models.RoomImage {
	out := make([]models.RoomImage, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.RoomImageFromRow(r))
	}
	return out
}

func decodeImages(rows [][]interface{}) []models.GalleryImage {
	out := make([]models.GalleryImage, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.GalleryImageFromRow(r))
	}
	return out
}

func decodeOffers(rows [][]interface{}) []models.Offer {
	out := make([]models.Offer, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.OfferFromRow(r))
	}
	return out
}

func decodeReviews(rows [][]interface{}) []models.Review {
	out := make([]models.Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ReviewFromRow(r))
	}
	return out
}
