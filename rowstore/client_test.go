package rowstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The HTTP client is tested against Memory's handler, which speaks the
// same RPC as the Apps Script deployment.
func TestClientAgainstMemoryHandler(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	mem.Seed(SheetRooms, [][]interface{}{{"R1", "Deluxe", "hill view", 4500}})

	srv := httptest.NewServer(mem.Handler())
	defer srv.Close()

	client := NewClient(srv.URL)

	rows, err := client.Get(ctx, SheetRooms)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "R1", rows[1][0])

	assert.NoError(t, client.Add(ctx, SheetRooms, []interface{}{"R2", "Suite", "top floor", 8000}))
	rows, _ = client.Get(ctx, SheetRooms)
	assert.Len(t, rows, 3)

	assert.NoError(t, client.Update(ctx, SheetRooms, 2, []interface{}{"R1", "Deluxe", "valley view", 4700}))
	rows, _ = client.Get(ctx, SheetRooms)
	assert.Equal(t, "valley view", rows[1][2])

	assert.NoError(t, client.Delete(ctx, SheetRooms, 2))
	rows, _ = client.Get(ctx, SheetRooms)
	assert.Len(t, rows, 2)

	ok, err := client.Login(ctx, "admin@evaani.com", "admin123")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Login(ctx, "admin@evaani.com", "nope")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, client.UpdatePassword(ctx, "admin@evaani.com", "fresh1"))
	ok, _ = client.Login(ctx, "admin@evaani.com", "fresh1")
	assert.True(t, ok)
}

func TestClientSurfacesRemoteErrors(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(ctx, SheetMenu)
	assert.Error(t, err)
	assert.Error(t, client.Add(ctx, SheetMenu, []interface{}{"1"}))
}

func TestClientSendsPlainTextContentType(t *testing.T) {
	ctx := context.Background()
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Get(ctx, SheetMenu)
	assert.NoError(t, err)
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
}
