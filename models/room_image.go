package models

// RoomImage is one row of the "roomImages" sheet: [id, roomId, imageUrl].
// RoomID references a Room.ID by plain value match, nothing enforces it.
type RoomImage struct {
	ID       string
	RoomID   string
	ImageURL string
}

func RoomImageFromRow(row []interface{}) RoomImage {
	return RoomImage{
		ID:       CellString(cellAt(row, 0)),
		RoomID:   CellString(cellAt(row, 1)),
		ImageURL: CellString(cellAt(row, 2)),
	}
}

func (ri RoomImage) Row() []interface{} {
	return []interface{}{ri.ID, ri.RoomID, ri.ImageURL}
}
