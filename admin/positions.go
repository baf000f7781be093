package admin

import (
	"context"
	"errors"

	"github.com/evaani/hotel-app/models"
	"github.com/evaani/hotel-app/rowstore"
)

// The remote store mutates by physical row position, and positions
// shift whenever an earlier row is deleted. A stale dashboard can
// therefore corrupt the wrong row if it trusts a cached position.
// Mutations here re-fetch the sheet and prove the id still sits at
// the claimed position before touching anything.

var (
	ErrRowNotFound     = errors.New("row not found for id")
	ErrStalePosition   = errors.New("row position is stale, reload and retry")
	ErrMissingIdentity = errors.New("mutation needs the row id")
)

// Index maps ids to current sheet positions. It is only valid for the
// fetch it was built from; rebuild it after every mutation.
type Index struct {
	pos map[string]int
}

// NewIndex takes header-stripped data rows; data row i lives at sheet
// position i+2 (1-based, header at 1).
func NewIndex(data [][]interface{}) Index {
	pos := make(map[string]int, len(data))
	for i, row := range data {
		id := models.CellString(cellID(row))
		if id == "" {
			continue
		}
		if _, dup := pos[id]; !dup {
			pos[id] = i + 2
		}
	}
	return Index{pos: pos}
}

func (ix Index) Position(id string) (int, bool) {
	p, ok := ix.pos[id]
	return p, ok
}

// VerifyPosition confirms that the row at rowIndex of a raw sheet
// response (header included) still carries the expected id.
func VerifyPosition(raw [][]interface{}, id string, rowIndex int) error {
	if rowIndex < 2 || rowIndex > len(raw) {
		return ErrStalePosition
	}
	if models.CellString(cellID(raw[rowIndex-1])) != id {
		return ErrStalePosition
	}
	return nil
}

// locate re-fetches the sheet and resolves where id currently lives.
// When the caller also has a cached rowIndex it is verified instead of
// silently redirected, so a stale dashboard is told to reload rather
// than mutating whatever moved into the slot.
func locate(ctx context.Context, rs rowstore.Store, sheet, id string, cachedIndex int) (int, error) {
	if id == "" {
		return 0, ErrMissingIdentity
	}
	raw, err := rs.Get(ctx, sheet)
	if err != nil {
		return 0, err
	}
	if cachedIndex > 0 {
		if err := VerifyPosition(raw, id, cachedIndex); err != nil {
			return 0, err
		}
		return cachedIndex, nil
	}
	if len(raw) > 1 {
		ix := NewIndex(raw[1:])
		if p, ok := ix.Position(id); ok {
			return p, nil
		}
	}
	return 0, ErrRowNotFound
}

// UpdateRow mutates the row identified by id. cachedIndex, when
// non-zero, is the position the dashboard believes the row is at and
// is verified before use.
func UpdateRow(ctx context.Context, rs rowstore.Store, sheet, id string, cachedIndex int, row []interface{}) error {
	pos, err := locate(ctx, rs, sheet, id, cachedIndex)
	if err != nil {
		return err
	}
	return rs.Update(ctx, sheet, pos, row)
}

// DeleteRow removes the row identified by id, with the same position
// verification as UpdateRow.
func DeleteRow(ctx context.Context, rs rowstore.Store, sheet, id string, cachedIndex int) error {
	pos, err := locate(ctx, rs, sheet, id, cachedIndex)
	if err != nil {
		return err
	}
	return rs.Delete(ctx, sheet, pos)
}

func cellID(row []interface{}) interface{} {
	if len(row) == 0 {
		return nil
	}
	return row[0]
}
