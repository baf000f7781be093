package models

// Room is one row of the "rooms" sheet: [id, name, description, price].
type Room struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

func RoomFromRow(row []interface{}) Room {
	return Room{
		ID:          CellString(cellAt(row, 0)),
		Name:        CellString(cellAt(row, 1)),
		Description: CellString(cellAt(row, 2)),
		Price:       CellFloat(cellAt(row, 3)),
	}
}

func (r Room) Row() []interface{} {
	return []interface{}{r.ID, r.Name, r.Description, r.Price}
}
