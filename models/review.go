package models

import "strings"

// Review is one row of the "reviews" sheet:
// [id, name, email, rating, message, date]. The date is stamped by the
// server at creation time, never edited.
type Review struct {
	ID      string
	Name    string
	Email   string
	Rating  int
	Message string
	Date    string
}

func ReviewFromRow(row []interface{}) Review {
	return Review{
		ID:      CellString(cellAt(row, 0)),
		Name:    CellString(cellAt(row, 1)),
		Email:   CellString(cellAt(row, 2)),
		Rating:  CellInt(cellAt(row, 3)),
		Message: CellString(cellAt(row, 4)),
		Date:    CellString(cellAt(row, 5)),
	}
}

func (r Review) Row() []interface{} {
	return []interface{}{r.ID, r.Name, r.Email, r.Rating, r.Message, r.Date}
}

// Stars renders the rating the way the site shows it, clamped to 1..5.
func (r Review) Stars() string {
	n := r.Rating
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
