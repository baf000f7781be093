package router

import (
	"net/http"
	"os"

	"github.com/evaani/hotel-app/config"
	"github.com/evaani/hotel-app/controllers"
	"github.com/evaani/hotel-app/middlewares"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("offerstatus", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "active" || s == "inactive"
		})
	}
}

func SetupRouter(cfg config.Config, rs rowstore.Store, st *store.Store, sessions *session.Manager) *gin.Engine {
	registerValidators()

	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Middleware only applies to routes registered after it, so the
	// per-IP limiter has to go on before the groups below.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())
	r.Use(sessions.Middleware())

	// Static frontend, when bundled alongside the binary.
	if _, err := os.Stat(cfg.FrontendDir); err == nil {
		r.Static("/Frontend", cfg.FrontendDir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/Frontend/index.html")
		})
	}

	pageCtrl := controllers.NewPageController(st, rs)
	pageCtrl.LoaderSeconds = cfg.LoaderSeconds
	popupCtrl := controllers.NewOfferPopupController(rs)
	authCtrl := controllers.NewAuthController(rs)
	adminCtrl := controllers.NewAdminController(rs, st)

	api := r.Group("/api")
	{
		pages := api.Group("/pages")
		{
			pages.GET("/home", pageCtrl.Home)
			pages.GET("/about", pageCtrl.About)
			pages.GET("/rooms", pageCtrl.Rooms)
			pages.GET("/menu", pageCtrl.Menu)
			pages.GET("/venue", pageCtrl.Venue)
			pages.GET("/amenities", pageCtrl.Amenities)
			pages.GET("/contact", pageCtrl.Contact)
		}

		api.POST("/reviews", pageCtrl.SubmitReview)
		api.GET("/carousel", pageCtrl.CarouselGet)
		api.PUT("/carousel", pageCtrl.CarouselSet)

		popup := api.Group("/offers/popup")
		{
			popup.GET("", popupCtrl.Current)
			popup.POST("/close", popupCtrl.Close)
			popup.POST("/claim", popupCtrl.Claim)
			popup.POST("/skip", popupCtrl.Skip)
		}

		api.POST("/admin/login", middlewares.NewLoginRateLimiter(), authCtrl.Login)
		api.POST("/admin/logout", authCtrl.Logout)
		api.GET("/admin/session", authCtrl.Session)

		adminAPI := api.Group("/admin", middlewares.AdminRequired())
		{
			adminAPI.GET("/schema", adminCtrl.Schema)
			adminAPI.GET("/dashboard", adminCtrl.Dashboard)
			adminAPI.POST("/rows", adminCtrl.AddRow)
			adminAPI.PATCH("/rows", adminCtrl.UpdateRow)
			adminAPI.DELETE("/rows", adminCtrl.DeleteRow)
			adminAPI.POST("/rooms", adminCtrl.AddRoom)
			adminAPI.PATCH("/offers/toggle", adminCtrl.ToggleOfferStatus)
			adminAPI.POST("/password", adminCtrl.UpdatePassword)
			adminAPI.POST("/reload", adminCtrl.Reload)
		}
	}

	return r
}
