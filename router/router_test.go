package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evaani/hotel-app/config"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/store"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The per-IP limiter must be attached before the route groups are
// registered; gin does not retro-apply middleware.
func TestGlobalRateLimitAppliesToRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	mem := rowstore.NewMemory()
	st := store.New(mem)
	st.LoadAll(context.Background())
	sessions := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))
	r := SetupRouter(config.Config{FrontendDir: "no-such-dir"}, mem, st, sessions)

	codes := map[int]int{}
	for i := 0; i < 60; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/pages/home", nil)
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	assert.Equal(t, 50, codes[http.StatusOK])
	assert.Equal(t, 10, codes[http.StatusTooManyRequests])
}
