package admin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/evaani/hotel-app/rowstore"
	"github.com/go-playground/validator/v10"
)

// Widget tells the dashboard which input to render for a field.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetTextarea Widget = "textarea"
	WidgetNumber   Widget = "number"
	WidgetRating   Widget = "rating"
	WidgetStatus   Widget = "status"
	WidgetURL      Widget = "url"
	WidgetEmail    Widget = "email"
)

// FieldSpec describes one editable column of a sheet. The synthetic id
// (and the auto-stamped review date) never appear here; they are
// injected at creation time and not edited directly.
type FieldSpec struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Widget   Widget `json:"widget"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
}

// Schemas drives the generic add/edit forms, one ordered field list
// per sheet. Field order matches the sheet column order after the id.
var Schemas = map[string][]FieldSpec{
	rowstore.SheetMenu: {
		{Name: "category", Label: "Category", Widget: WidgetText, Required: true},
		{Name: "name", Label: "Name", Widget: WidgetText, Required: true},
		{Name: "price", Label: "Price", Widget: WidgetNumber, Required: true},
	},
	rowstore.SheetRooms: {
		{Name: "name", Label: "Name", Widget: WidgetText, Required: true},
		{Name: "description", Label: "Description", Widget: WidgetTextarea, Required: true},
		{Name: "price", Label: "Price", Widget: WidgetNumber, Required: true},
	},
	rowstore.SheetRoomImages: {
		{Name: "roomId", Label: "Room", Widget: WidgetText, Required: true},
		{Name: "imageUrl", Label: "Image URL", Widget: WidgetURL, Required: true},
	},
	rowstore.SheetImages: {
		{Name: "imageUrl", Label: "Image URL", Widget: WidgetURL, Required: true},
		{Name: "title", Label: "Title", Widget: WidgetText},
	},
	rowstore.SheetOffers: {
		{Name: "title", Label: "Title", Widget: WidgetText, Required: true},
		{Name: "description", Label: "Description", Widget: WidgetTextarea, Required: true},
		{Name: "status", Label: "Status", Widget: WidgetStatus, Default: "active"},
	},
	rowstore.SheetReviews: {
		{Name: "name", Label: "Name", Widget: WidgetText, Required: true},
		{Name: "email", Label: "Email", Widget: WidgetEmail, Required: true},
		{Name: "rating", Label: "Rating", Widget: WidgetRating, Required: true},
		{Name: "message", Label: "Message", Widget: WidgetTextarea, Required: true},
	},
}

var validate = validator.New()

// Validate checks submitted values against the sheet schema before any
// network call. The result maps field name to an inline message; an
// empty map means the submission is clean.
func Validate(sheet string, values map[string]string) (map[string]string, error) {
	specs, ok := Schemas[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", sheet)
	}

	problems := map[string]string{}
	for _, spec := range specs {
		v := values[spec.Name]
		if v == "" {
			if spec.Required {
				problems[spec.Name] = spec.Label + " is required"
			}
			continue
		}

		switch spec.Widget {
		case WidgetNumber:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil || n < 0 {
				problems[spec.Name] = spec.Label + " must be a non-negative number"
			}
		case WidgetRating:
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 5 {
				problems[spec.Name] = spec.Label + " must be between 1 and 5"
			}
		case WidgetEmail:
			if err := validate.Var(v, "email"); err != nil {
				problems[spec.Name] = spec.Label + " must be a valid email address"
			}
		case WidgetURL:
			if err := validate.Var(v, "url"); err != nil {
				// data URLs from the upload path are fine too
				if err := validate.Var(v, "datauri"); err != nil {
					problems[spec.Name] = spec.Label + " must be a valid URL"
				}
			}
		case WidgetStatus:
			if v != "active" && v != "inactive" {
				problems[spec.Name] = spec.Label + ` must be "active" or "inactive"`
			}
		}
	}
	return problems, nil
}

// BuildRow assembles the full sheet row for an add: the id (current
// millis) goes first, the schema fields follow in column order, and
// reviews get the stamped date appended.
func BuildRow(sheet string, values map[string]string, now time.Time) ([]interface{}, error) {
	specs, ok := Schemas[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", sheet)
	}

	row := []interface{}{strconv.FormatInt(now.UnixMilli(), 10)}
	for _, spec := range specs {
		v := values[spec.Name]
		if v == "" {
			v = spec.Default
		}
		switch spec.Widget {
		case WidgetNumber:
			n, _ := strconv.ParseFloat(v, 64)
			row = append(row, n)
		case WidgetRating:
			n, _ := strconv.Atoi(v)
			if n < 1 {
				n = 1
			}
			if n > 5 {
				n = 5
			}
			row = append(row, n)
		default:
			row = append(row, v)
		}
	}

	if sheet == rowstore.SheetReviews {
		row = append(row, now.Format("2006-01-02"))
	}
	return row, nil
}

// Defaults are the values the form resets to after a successful add.
func Defaults(sheet string) map[string]string {
	out := map[string]string{}
	for _, spec := range Schemas[sheet] {
		out[spec.Name] = spec.Default
	}
	return out
}
