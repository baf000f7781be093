package rowstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

var defaultHeaders = map[string][]interface{}{
	SheetMenu:       {"id", "category", "name", "price", "type"},
	SheetRooms:      {"id", "name", "description", "price"},
	SheetRoomImages: {"id", "roomId", "imageUrl"},
	SheetImages:     {"id", "imageUrl", "title"},
	SheetOffers:     {"id", "title", "description", "status"},
	SheetReviews:    {"id", "name", "email", "rating", "message", "date"},
}

// Memory is an in-process Store with the same row semantics as the
// spreadsheet: row 1 is the header, data starts at row 2, update and
// delete address physical positions. It backs the test suites and is
// the dev fallback when SHEETS_API_URL is unset.
type Memory struct {
	mu            sync.RWMutex
	sheets        map[string][][]interface{}
	adminEmail    string
	adminPassword string
}

func NewMemory() *Memory {
	m := &Memory{
		sheets:        make(map[string][][]interface{}),
		adminEmail:    "admin@evaani.com",
		adminPassword: "admin123",
	}
	for name, header := range defaultHeaders {
		m.sheets[name] = [][]interface{}{append([]interface{}{}, header...)}
	}
	return m
}

// Seed replaces the data rows of a sheet, keeping the header.
func (m *Memory) Seed(sheet string, rows [][]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	header := m.sheets[sheet][:1]
	m.sheets[sheet] = append(append([][]interface{}{}, header...), rows...)
}

func (m *Memory) SetCredentials(email, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adminEmail = email
	m.adminPassword = password
}

func (m *Memory) Get(_ context.Context, sheet string) ([][]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", sheet)
	}
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = append([]interface{}{}, r...)
	}
	return out, nil
}

func (m *Memory) Add(_ context.Context, sheet string, row []interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[sheet]; !ok {
		return fmt.Errorf("unknown sheet %q", sheet)
	}
	m.sheets[sheet] = append(m.sheets[sheet], append([]interface{}{}, row...))
	return nil
}

func (m *Memory) Update(_ context.Context, sheet string, rowIndex int, row []interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("unknown sheet %q", sheet)
	}
	// Row 1 is the header; it is not addressable.
	if rowIndex < 2 || rowIndex > len(rows) {
		return fmt.Errorf("row index %d out of range for %q", rowIndex, sheet)
	}
	rows[rowIndex-1] = append([]interface{}{}, row...)
	return nil
}

func (m *Memory) Delete(_ context.Context, sheet string, rowIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("unknown sheet %q", sheet)
	}
	if rowIndex < 2 || rowIndex > len(rows) {
		return fmt.Errorf("row index %d out of range for %q", rowIndex, sheet)
	}
	m.sheets[sheet] = append(rows[:rowIndex-1], rows[rowIndex:]...)
	return nil
}

func (m *Memory) Login(_ context.Context, email, password string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return email == m.adminEmail && password == m.adminPassword, nil
}

func (m *Memory) UpdatePassword(_ context.Context, email, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if email != m.adminEmail {
		return fmt.Errorf("unknown account %q", email)
	}
	m.adminPassword = newPassword
	return nil
}

// Handler exposes Memory over the same HTTP RPC the Apps Script
// deployment speaks, so Client can be pointed at it in tests.
func (m *Memory) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeRPCError(w, http.StatusBadRequest, err)
			return
		}

		ctx := r.Context()
		switch req.Action {
		case "get":
			rows, err := m.Get(ctx, req.Sheet)
			if err != nil {
				writeRPCError(w, http.StatusBadRequest, err)
				return
			}
			writeRPCJSON(w, rows)
		case "add":
			if err := m.Add(ctx, req.Sheet, req.Row); err != nil {
				writeRPCError(w, http.StatusBadRequest, err)
				return
			}
			writeRPCJSON(w, map[string]string{"status": "success"})
		case "update":
			if err := m.Update(ctx, req.Sheet, req.RowIndex, req.Row); err != nil {
				writeRPCError(w, http.StatusBadRequest, err)
				return
			}
			writeRPCJSON(w, map[string]string{"status": "success"})
		case "delete":
			if err := m.Delete(ctx, req.Sheet, req.RowIndex); err != nil {
				writeRPCError(w, http.StatusBadRequest, err)
				return
			}
			writeRPCJSON(w, map[string]string{"status": "success"})
		case "login":
			ok, _ := m.Login(ctx, req.Email, req.Password)
			writeRPCJSON(w, map[string]bool{"success": ok})
		case "updatePassword":
			if err := m.UpdatePassword(ctx, req.Email, req.NewPassword); err != nil {
				writeRPCError(w, http.StatusBadRequest, err)
				return
			}
			writeRPCJSON(w, map[string]string{"status": "success"})
		default:
			writeRPCError(w, http.StatusBadRequest, fmt.Errorf("unknown action %q", req.Action))
		}
	})
}

func writeRPCJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeRPCError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": err.Error()})
}
