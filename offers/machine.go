package offers

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/evaani/hotel-app/models"
	"github.com/evaani/hotel-app/session"
)

// Phase of the sequential offer disclosure, one machine per browser
// session. The popup walks idle -> pending -> shown -> advancing and
// back to shown until every offer has been seen.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseShown     Phase = "shown"
	PhaseAdvancing Phase = "advancing"
	PhaseDone      Phase = "done"
)

// validTransitions is the authoritative definition; everything else is
// rejected, which doubles as the re-entrancy guard (a double close
// arrives in advancing and is refused).
var validTransitions = map[Phase][]Phase{
	PhaseIdle:      {PhasePending, PhaseDone},
	PhasePending:   {PhaseShown, PhaseDone},
	PhaseShown:     {PhaseAdvancing, PhaseDone},
	PhaseAdvancing: {PhaseShown, PhaseDone},
	PhaseDone:      {},
}

func CanTransition(from, to Phase) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var ErrInvalidTransition = errors.New("offer popup: invalid transition")

const (
	// ShowDelay holds the first offer back after the data is in hand.
	ShowDelay = 3 * time.Second
	// AdvanceDelay separates a close from the next reveal.
	AdvanceDelay = 1 * time.Second
)

// FilterActive keeps the active offers from a raw sheet response
// (header included). The status column is located by its header label
// and matched case-insensitively, unlike the aggregation store's
// exact match. The mismatch is load-bearing for the existing site.
func FilterActive(raw [][]interface{}) []models.Offer {
	if len(raw) < 2 {
		return nil
	}
	statusCol := 3
	for i, label := range raw[0] {
		if strings.EqualFold(models.CellString(label), "status") {
			statusCol = i
			break
		}
	}

	var active []models.Offer
	for _, row := range raw[1:] {
		if len(row) > statusCol && strings.EqualFold(models.CellString(row[statusCol]), models.OfferStatusActive) {
			active = append(active, models.OfferFromRow(row))
		}
	}
	return active
}

// Machine is rehydrated from session state on every request, stepped,
// and persisted back, so a route change resumes mid-sequence.
type Machine struct {
	Offers    []models.Offer
	Phase     Phase
	Current   int
	Seen      map[int]bool
	NotBefore time.Time

	now func() time.Time
}

// Rehydrate rebuilds the machine from persisted session state. A
// session that has never seen the popup starts the show-delay timer;
// a completed session stays terminal.
func Rehydrate(active []models.Offer, d session.Data, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	m := &Machine{
		Offers:  active,
		Phase:   PhaseIdle,
		Current: d.CurrentOfferIndex,
		Seen:    map[int]bool{},
		now:     now,
	}
	for _, i := range d.SeenOffers {
		if i >= 0 {
			m.Seen[i] = true
		}
	}

	switch {
	case len(active) == 0:
		m.Phase = PhaseIdle
	case d.OffersCompleted || m.NextUnseen() == -1:
		m.Phase = PhaseDone
	case d.OfferPhase != "":
		m.Phase = Phase(d.OfferPhase)
		m.NotBefore = time.UnixMilli(d.OfferNotBefore)
		if m.Current < 0 || m.Current >= len(active) || m.Seen[m.Current] {
			m.Current = m.NextUnseen()
			if m.Current == -1 {
				m.Phase = PhaseDone
			}
		}
	default:
		// fresh session with data in hand
		m.Phase = PhasePending
		m.Current = 0
		m.NotBefore = now().Add(ShowDelay)
	}
	return m
}

// Resolve fires any elapsed timer and reports what the client should
// render right now. It is the only place pending/advancing become
// shown.
func (m *Machine) Resolve() (models.Offer, bool) {
	switch m.Phase {
	case PhasePending, PhaseAdvancing:
		if m.now().Before(m.NotBefore) {
			return models.Offer{}, false
		}
		if m.Seen[m.Current] {
			m.Current = m.NextUnseen()
			if m.Current == -1 {
				m.Phase = PhaseDone
				return models.Offer{}, false
			}
		}
		m.Phase = PhaseShown
		return m.Offers[m.Current], true
	case PhaseShown:
		return m.Offers[m.Current], true
	default:
		return models.Offer{}, false
	}
}

// Close dismisses the current offer and lines up the lowest-index
// unseen one. Only legal while an offer is shown.
func (m *Machine) Close() error {
	if !CanTransition(m.Phase, PhaseAdvancing) {
		return ErrInvalidTransition
	}
	m.Seen[m.Current] = true

	next := m.NextUnseen()
	if next == -1 {
		m.Phase = PhaseDone
		return nil
	}
	m.Current = next
	m.Phase = PhaseAdvancing
	m.NotBefore = m.now().Add(AdvanceDelay)
	return nil
}

// Claim is the call-to-action: every offer counts as seen and the
// sequence terminates.
func (m *Machine) Claim() error {
	return m.finish()
}

// SkipAll dismisses the whole sequence at once.
func (m *Machine) SkipAll() error {
	return m.finish()
}

func (m *Machine) finish() error {
	if !CanTransition(m.Phase, PhaseDone) {
		return ErrInvalidTransition
	}
	for i := range m.Offers {
		m.Seen[i] = true
	}
	m.Phase = PhaseDone
	return nil
}

// NextUnseen scans forward from 0; the sequence never wraps around
// from the current position.
func (m *Machine) NextUnseen() int {
	for i := range m.Offers {
		if !m.Seen[i] {
			return i
		}
	}
	return -1
}

func (m *Machine) Remaining() int {
	n := 0
	for i := range m.Offers {
		if !m.Seen[i] {
			n++
		}
	}
	return n
}

// Persist writes the machine back into the session snapshot.
func (m *Machine) Persist(d *session.Data) {
	seen := make([]int, 0, len(m.Seen))
	for i := range m.Seen {
		seen = append(seen, i)
	}
	sort.Ints(seen)

	d.SeenOffers = seen
	d.CurrentOfferIndex = m.Current
	d.OffersCompleted = m.Phase == PhaseDone
	d.OfferPhase = string(m.Phase)
	d.OfferNotBefore = m.NotBefore.UnixMilli()
}
