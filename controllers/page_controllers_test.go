package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/evaani/hotel-app/config"
	"github.com/evaani/hotel-app/router"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/store"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPagesReportLoadingUntilFirstBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	mem := seededMemory()
	st := store.New(mem) // no LoadAll yet
	sessions := session.NewManager([]byte("0123456789abcdef0123456789abcdef"))
	r := router.SetupRouter(config.Config{FrontendDir: "no-such-dir"}, mem, st, sessions)

	w := doJSON(r, "GET", "/api/pages/home", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataOf(t, w)["loading"])

	st.LoadAll(context.Background())
	w = doJSON(r, "GET", "/api/pages/home", nil, nil)
	assert.NotContains(t, dataOf(t, w), "loading")
}

func TestHomePage(t *testing.T) {
	r, _ := setupApp(t, seededMemory())

	w := doJSON(r, "GET", "/api/pages/home", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, w)
	// only the exact lowercase "active" offer makes the home page
	activeOffers, _ := data["activeOffers"].([]interface{})
	assert.Len(t, activeOffers, 1)
	assert.Equal(t, 1.0, data["roomCount"])

	reviews, _ := data["reviews"].([]interface{})
	assert.Len(t, reviews, 1)
	first, _ := reviews[0].(map[string]interface{})
	assert.Equal(t, "★★★★★", first["stars"])
}

func TestRoomsPageGroupsImages(t *testing.T) {
	r, _ := setupApp(t, seededMemory())

	w := doJSON(r, "GET", "/api/pages/rooms", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	rooms, _ := dataOf(t, w)["rooms"].([]interface{})
	assert.Len(t, rooms, 1)
	room, _ := rooms[0].(map[string]interface{})
	assert.Equal(t, "₹4,500", room["priceDisplay"])
	assert.Equal(t, []interface{}{"u1", "u2"}, room["images"])
}

func TestMenuPageSectionOrder(t *testing.T) {
	r, _ := setupApp(t, seededMemory())

	w := doJSON(r, "GET", "/api/pages/menu", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	sections, _ := dataOf(t, w)["sections"].([]interface{})
	assert.Len(t, sections, 2)
	first, _ := sections[0].(map[string]interface{})
	second, _ := sections[1].(map[string]interface{})
	assert.Equal(t, "Soup", first["category"])
	assert.Equal(t, "Mains", second["category"])
}

func TestSubmitReview(t *testing.T) {
	r, st := setupApp(t, seededMemory())

	w := doJSON(r, "POST", "/api/reviews", map[string]interface{}{
		"name": "Ravi", "email": "r@c.com", "rating": 6, "message": "great",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/reviews", map[string]interface{}{
		"name": "Ravi", "email": "r@c.com", "rating": 4, "message": "great",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	reviews := st.Snapshot().Reviews
	assert.Len(t, reviews, 2)
	assert.Equal(t, "Ravi", reviews[1].Name)
	assert.Equal(t, 4, reviews[1].Rating)
}

func TestCarouselSlideSurvivesAcrossRequests(t *testing.T) {
	r, _ := setupApp(t, seededMemory())

	w := doJSON(r, "GET", "/api/carousel", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, dataOf(t, w)["slide"])
	cookies := w.Result().Cookies()

	// positions wrap around the nine hero images
	w = doJSON(r, "PUT", "/api/carousel", map[string]int{"slide": 12}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.0, dataOf(t, w)["slide"])

	w = doJSON(r, "GET", "/api/carousel", nil, cookies)
	assert.Equal(t, 3.0, dataOf(t, w)["slide"])

	// a different visitor starts from the beginning
	w = doJSON(r, "GET", "/api/carousel", nil, nil)
	assert.Equal(t, 0.0, dataOf(t, w)["slide"])
}
