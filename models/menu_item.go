package models

// MenuItem is one row of the "menu" sheet: [id, category, name, price, type].
// The type column (veg/nonveg) is legacy and may be absent.
type MenuItem struct {
	ID       string
	Category string
	Name     string
	Price    float64
	Type     string
}

func MenuItemFromRow(row []interface{}) MenuItem {
	return MenuItem{
		ID:       CellString(cellAt(row, 0)),
		Category: CellString(cellAt(row, 1)),
		Name:     CellString(cellAt(row, 2)),
		Price:    CellFloat(cellAt(row, 3)),
		Type:     CellString(cellAt(row, 4)),
	}
}

func (m MenuItem) Row() []interface{} {
	return []interface{}{m.ID, m.Category, m.Name, m.Price, m.Type}
}
