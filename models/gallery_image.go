package models

// GalleryImage is one row of the "images" sheet: [id, imageUrl, title].
type GalleryImage struct {
	ID       string
	ImageURL string
	Title    string
}

func GalleryImageFromRow(row []interface{}) GalleryImage {
	return GalleryImage{
		ID:       CellString(cellAt(row, 0)),
		ImageURL: CellString(cellAt(row, 1)),
		Title:    CellString(cellAt(row, 2)),
	}
}

func (g GalleryImage) Row() []interface{} {
	return []interface{}{g.ID, g.ImageURL, g.Title}
}
