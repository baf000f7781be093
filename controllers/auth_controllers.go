package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
)

const DefaultAdminEmail = "admin@evaani.com"

type AuthController struct {
	RS rowstore.Store
}

func NewAuthController(rs rowstore.Store) *AuthController {
	return &AuthController{RS: rs}
}

// Login delegates the shared-secret check to the remote store and, on
// success, marks the session and issues a token for API clients.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ok, err := ac.RS.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, errors.New("login service unavailable"))
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateAdminToken(input.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if sess := session.FromContext(c); sess != nil {
		sess.Update(func(d *session.Data) {
			d.IsAdmin = true
			d.AdminTimestamp = time.Now()
		})
	}

	utils.InfoLogger.Printf("admin login: %s", input.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if sess := session.FromContext(c); sess != nil {
		sess.Update(func(d *session.Data) {
			d.IsAdmin = false
			d.AdminTimestamp = time.Time{}
		})
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Session lets the dashboard decide whether to render the login gate.
func (ac *AuthController) Session(c *gin.Context) {
	sess := session.FromContext(c)
	if sess == nil {
		utils.RespondJSON(c, http.StatusOK, "session", gin.H{"isAdmin": false})
		return
	}
	d := sess.Get()
	out := gin.H{"isAdmin": d.IsAdmin}
	if d.IsAdmin {
		out["adminTimestamp"] = d.AdminTimestamp.UnixMilli()
	}
	utils.RespondJSON(c, http.StatusOK, "session", out)
}
