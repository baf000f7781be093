package models

import (
	"strconv"
	"strings"
)

// Sheet rows arrive as mixed scalars: the spreadsheet returns ids and
// prices sometimes as numbers, sometimes as strings, and the in-memory
// store hands cells back exactly as they were written, so untyped ints
// show up too. Every record type decodes through these helpers so the
// "which index is price" knowledge lives in exactly one place per
// sheet.

func CellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func CellFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func CellInt(v interface{}) int {
	return int(CellFloat(v))
}

func cellAt(row []interface{}, i int) interface{} {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
