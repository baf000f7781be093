package main

import (
	"context"
	"log"
	"time"

	"github.com/evaani/hotel-app/config"
	"github.com/evaani/hotel-app/router"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/store"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var rs rowstore.Store
	if cfg.SheetsAPIURL != "" {
		rs = rowstore.NewClient(cfg.SheetsAPIURL)
		utils.InfoLogger.Printf("using remote row store at %s", cfg.SheetsAPIURL)
	} else {
		utils.InfoLogger.Println("SHEETS_API_URL not set, using in-memory row store")
		rs = rowstore.NewMemory()
	}

	st := store.New(rs)
	// Initial batch in the background; pages answer {loading:true}
	// until it settles, the way the site shows its loading screen.
	go st.LoadAll(context.Background())

	sessions := session.NewManager([]byte(cfg.SessionHashKey))
	sessions.StartCleanup(time.Hour)
	defer sessions.StopCleanup()

	r := router.SetupRouter(cfg, rs, st, sessions)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
