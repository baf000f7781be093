package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/evaani/hotel-app/admin"
	"github.com/evaani/hotel-app/models"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/store"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
)

// heroImages rotate on every page header; the slide position is kept
// in the session so a route change does not reset the carousel.
var heroImages = []string{
	"https://i.postimg.cc/tCDw1btR/IMG-0737.jpg",
	"https://i.postimg.cc/4xfGMwwv/IMG-0688.jpg",
	"https://i.postimg.cc/D0PDPk9x/IMG-0725.jpg",
	"https://i.postimg.cc/4yRk11nr/IMG-0704.jpg",
	"https://i.postimg.cc/1RDZ3bj3/IMG-0707.jpg",
	"https://i.postimg.cc/L6TKzLRq/IMG-0716.jpg",
	"https://i.postimg.cc/hjxNh7pG/IMG-0719.jpg",
	"https://i.postimg.cc/wMpZNTGk/IMG-0723.jpg",
	"https://i.postimg.cc/VLz2LvM8/IMG-0732.jpg",
}

type PageController struct {
	Store *store.Store
	RS    rowstore.Store

	// LoaderSeconds is how long the frontend holds its splash screen
	// at minimum, handed down so it is not hardcoded client-side.
	LoaderSeconds int
}

func NewPageController(st *store.Store, rs rowstore.Store) *PageController {
	return &PageController{Store: st, RS: rs}
}

// guard short-circuits page rendering while the initial batch is in
// flight or after a whole-batch failure.
func (pc *PageController) guard(c *gin.Context) (store.Snapshot, bool) {
	if pc.Store.Loading() {
		utils.RespondJSON(c, http.StatusOK, "loading", gin.H{
			"loading":       true,
			"loaderSeconds": pc.LoaderSeconds,
		})
		return store.Snapshot{}, false
	}
	if pc.Store.Err() != nil {
		utils.RespondError(c, http.StatusServiceUnavailable,
			errors.New("Failed to load data. Please refresh the page."))
		return store.Snapshot{}, false
	}
	return pc.Store.Snapshot(), true
}

func (pc *PageController) Home(c *gin.Context) {
	snap, ok := pc.guard(c)
	if !ok {
		return
	}

	reviews := snap.Reviews
	if len(reviews) > 6 {
		reviews = reviews[len(reviews)-6:]
	}

	utils.RespondJSON(c, http.StatusOK, "home", gin.H{
		"heroImages":   heroImages,
		"activeOffers": snap.ActiveOffers,
		"reviews":      reviewViews(reviews),
		"roomCount":    len(snap.Rooms),
	})
}

func (pc *PageController) About(c *gin.Context) {
	if _, ok := pc.guard(c); !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "about", gin.H{
		"heroImages": heroImages,
		"name":       "Evaani Hotel",
		"tagline":    "A quiet stay in the heart of the hills",
	})
}

type roomView struct {
	models.Room
	PriceDisplay string   `json:"priceDisplay"`
	Images       []string `json:"images"`
}

func (pc *PageController) Rooms(c *gin.Context) {
	snap, ok := pc.guard(c)
	if !ok {
		return
	}

	views := make([]roomView, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		views = append(views, roomView{
			Room:         room,
			PriceDisplay: utils.FormatPrice(room.Price),
			Images:       snap.ImagesByRoomID[room.ID],
		})
	}
	utils.RespondJSON(c, http.StatusOK, "rooms", gin.H{"rooms": views})
}

type menuItemView struct {
	models.MenuItem
	PriceDisplay string `json:"priceDisplay"`
}

func (pc *PageController) Menu(c *gin.Context) {
	snap, ok := pc.guard(c)
	if !ok {
		return
	}

	sections := make([]gin.H, 0, len(snap.Categories))
	for _, cat := range snap.Categories {
		items := make([]menuItemView, 0, len(snap.MenuByCategory[cat]))
		for _, item := range snap.MenuByCategory[cat] {
			items = append(items, menuItemView{MenuItem: item, PriceDisplay: utils.FormatPrice(item.Price)})
		}
		sections = append(sections, gin.H{"category": cat, "items": items})
	}
	utils.RespondJSON(c, http.StatusOK, "menu", gin.H{"sections": sections})
}

func (pc *PageController) Venue(c *gin.Context) {
	snap, ok := pc.guard(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "venue", gin.H{"gallery": snap.Images})
}

func (pc *PageController) Amenities(c *gin.Context) {
	if _, ok := pc.guard(c); !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "amenities", gin.H{
		"amenities": []string{
			"Free Wi-Fi", "Restaurant & Room Service", "Banquet & Venue Hire",
			"Garden Seating", "Parking", "24x7 Front Desk",
		},
	})
}

func (pc *PageController) Contact(c *gin.Context) {
	snap, ok := pc.guard(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "contact", gin.H{
		"email":   "stay@evaani.com",
		"phone":   "+91 98765 43210",
		"reviews": reviewViews(snap.Reviews),
	})
}

// SubmitReview is the one public mutation: guests leave a review from
// the contact page. The row lands in the sheet and the shared view is
// re-fetched so the new review shows up immediately.
func (pc *PageController) SubmitReview(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	row, err := admin.BuildRow(rowstore.SheetReviews, map[string]string{
		"name":    input.Name,
		"email":   input.Email,
		"rating":  strconv.Itoa(input.Rating),
		"message": input.Message,
	}, time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := pc.RS.Add(c.Request.Context(), rowstore.SheetReviews, row); err != nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("could not submit review, please try again"))
		return
	}

	pc.Store.Reload(c.Request.Context())
	utils.RespondJSON(c, http.StatusCreated, "Thank you for your review!", nil)
}

func (pc *PageController) CarouselGet(c *gin.Context) {
	slide := 0
	if sess := session.FromContext(c); sess != nil {
		slide = sess.Get().CarouselSlide
	}
	utils.RespondJSON(c, http.StatusOK, "carousel", gin.H{
		"slide":      slide,
		"total":      len(heroImages),
		"heroImages": heroImages,
	})
}

func (pc *PageController) CarouselSet(c *gin.Context) {
	var input struct {
		Slide int `json:"slide" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	slide := input.Slide % len(heroImages)
	if sess := session.FromContext(c); sess != nil {
		sess.Update(func(d *session.Data) {
			d.CarouselSlide = slide
		})
	}
	utils.RespondJSON(c, http.StatusOK, "carousel", gin.H{"slide": slide})
}

type reviewView struct {
	models.Review
	Stars string `json:"stars"`
}

func reviewViews(reviews []models.Review) []reviewView {
	out := make([]reviewView, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewView{Review: r, Stars: r.Stars()})
	}
	return out
}
