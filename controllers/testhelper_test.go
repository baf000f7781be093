package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evaani/hotel-app/config"
	"github.com/evaani/hotel-app/router"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/store"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
)

func seededMemory() *rowstore.Memory {
	mem := rowstore.NewMemory()
	mem.Seed(rowstore.SheetMenu, [][]interface{}{
		{"10", "Soup", "Tomato", 50},
		{"20", "Mains", "Dal", 120},
	})
	mem.Seed(rowstore.SheetRooms, [][]interface{}{
		{"R1", "Deluxe", "hill view", 4500},
	})
	mem.Seed(rowstore.SheetRoomImages, [][]interface{}{
		{"1", "R1", "u1"},
		{"2", "R1", "u2"},
	})
	mem.Seed(rowstore.SheetImages, [][]interface{}{
		{"g1", "url1", "Garden"},
	})
	mem.Seed(rowstore.SheetOffers, [][]interface{}{
		{"o1", "Weekend Deal", "two nights", "active"},
		{"o2", "Loud Deal", "caps", "Active"},
	})
	mem.Seed(rowstore.SheetReviews, [][]interface{}{
		{"rv1", "Asha", "a@b.com", 5, "lovely", "2026-08-01"},
	})
	return mem
}

func setupApp(t *testing.T, mem *rowstore.Memory) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	st := store.New(mem)
	st.LoadAll(context.Background())

	sessions := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))
	cfg := config.Config{FrontendDir: "no-such-dir"}
	return router.SetupRouter(cfg, mem, st, sessions), st
}

func doJSON(r http.Handler, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSONWithAuth(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad JSON response: %v: %s", err, w.Body.String())
	}
	return out
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, _ := decodeResponse(t, w)["data"].(map[string]interface{})
	return data
}
