package controllers

import (
	"net/http"
	"time"

	"github.com/evaani/hotel-app/offers"
	"github.com/evaani/hotel-app/rowstore"
	"github.com/evaani/hotel-app/session"
	"github.com/evaani/hotel-app/utils"
	"github.com/gin-gonic/gin"
)

// OfferPopupController drives the one-at-a-time offer disclosure. It
// fetches the offers sheet on its own (independently of the
// aggregation store, with a case-insensitive active filter) and keeps
// the machine state in the session so a route change resumes the
// sequence instead of restarting it.
type OfferPopupController struct {
	RS  rowstore.Store
	Now func() time.Time
}

func NewOfferPopupController(rs rowstore.Store) *OfferPopupController {
	return &OfferPopupController{RS: rs, Now: time.Now}
}

func (oc *OfferPopupController) rehydrate(c *gin.Context) (*offers.Machine, *session.Session, bool) {
	sess := session.FromContext(c)
	if sess == nil {
		return nil, nil, false
	}

	raw, err := oc.RS.Get(c.Request.Context(), rowstore.SheetOffers)
	if err != nil {
		// A failed fetch means no popup this time round, nothing else.
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("popup offers fetch failed: %v", err)
		}
		return nil, nil, false
	}

	active := offers.FilterActive(raw)
	if len(active) == 0 {
		return nil, nil, false
	}
	return offers.Rehydrate(active, sess.Get(), oc.Now), sess, true
}

func (oc *OfferPopupController) respond(c *gin.Context, m *offers.Machine, sess *session.Session) {
	offer, visible := m.Resolve()
	sess.Update(m.Persist)

	out := gin.H{
		"show":      visible,
		"phase":     m.Phase,
		"remaining": m.Remaining(),
		"total":     len(m.Offers),
	}
	if visible {
		out["offer"] = offer
		out["index"] = m.Current
	} else if m.Phase == offers.PhasePending || m.Phase == offers.PhaseAdvancing {
		out["notBefore"] = m.NotBefore.UnixMilli()
	}
	utils.RespondJSON(c, http.StatusOK, "popup", out)
}

// Current tells the client what to render right now; polling it is
// what fires the show/advance timers.
func (oc *OfferPopupController) Current(c *gin.Context) {
	m, sess, ok := oc.rehydrate(c)
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "popup", gin.H{"show": false})
		return
	}
	oc.respond(c, m, sess)
}

// Close dismisses the current offer and schedules the next unseen one.
func (oc *OfferPopupController) Close(c *gin.Context) {
	oc.transition(c, func(m *offers.Machine) error { return m.Close() })
}

// Claim marks the whole sequence seen; the client then navigates to
// the contact page.
func (oc *OfferPopupController) Claim(c *gin.Context) {
	oc.transition(c, func(m *offers.Machine) error { return m.Claim() })
}

// Skip ends the sequence without claiming.
func (oc *OfferPopupController) Skip(c *gin.Context) {
	oc.transition(c, func(m *offers.Machine) error { return m.SkipAll() })
}

func (oc *OfferPopupController) transition(c *gin.Context, step func(*offers.Machine) error) {
	m, sess, ok := oc.rehydrate(c)
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "popup", gin.H{"show": false})
		return
	}

	// Fire an elapsed timer first so a close right after the reveal
	// window opens is legal.
	m.Resolve()

	if err := step(m); err != nil {
		sess.Update(m.Persist)
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	oc.respond(c, m, sess)
}
