package gesture

// Simulated swipe used by the Again / Got it buttons.
const (
	buttonOffset   = 150
	buttonVelocity = 1000
)

// Session is the state of one study run over a deck of n cards.
type Session struct {
	n       int
	index   int
	flipped bool
}

// NewSession starts a study run over n cards.
func NewSession(n int) *Session {
	if n < 0 {
		n = 0
	}
	return &Session{n: n}
}

// Index returns the position of the current card.
func (s *Session) Index() int { return s.index }

// Current returns the index of the card being studied and false once the
// run is complete.
func (s *Session) Current() (int, bool) {
	if s.Complete() {
		return s.n, false
	}
	return s.index, true
}

// Len returns the number of cards in the run.
func (s *Session) Len() int { return s.n }

// Flipped reports whether the current card shows its back.
func (s *Session) Flipped() bool { return s.flipped }

// Complete reports whether every card has been studied.
func (s *Session) Complete() bool { return s.index >= s.n }

// Flip toggles the current card. It does nothing once the run is complete.
func (s *Session) Flip() {
	if s.Complete() {
		return
	}
	s.flipped = !s.flipped
}

// Apply advances to the next card on any advance action and resets the
// flip. ActionNone leaves the session unchanged. Returns true if it advanced.
func (s *Session) Apply(a CardAction) bool {
	if a == ActionNone || s.Complete() {
		return false
	}
	s.index++
	s.flipped = false
	return true
}

// Swipe classifies a gesture sample and applies the result.
func (s *Session) Swipe(startX, endX, velocityX float64) CardAction {
	a := ClassifyCard(startX, endX, velocityX)
	s.Apply(a)
	return a
}

// Again marks the current card as not known (simulated left swipe).
func (s *Session) Again() CardAction {
	return s.Swipe(0, -buttonOffset, -buttonVelocity)
}

// GotIt marks the current card as known (simulated right swipe).
func (s *Session) GotIt() CardAction {
	return s.Swipe(0, buttonOffset, buttonVelocity)
}

// Restart returns to the first card.
func (s *Session) Restart() {
	s.index = 0
	s.flipped = false
}
