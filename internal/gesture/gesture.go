// Package gesture classifies horizontal drags on flashcards and vocabulary
// list items. Classification is a pure function of one gesture sample; the
// caller owns the current card index and any confirmation state.
package gesture

import "math"

const (
	// SwipeDistance is the drag distance (px) beyond which a card advances.
	SwipeDistance = 100
	// SwipeVelocity is the flick velocity (px/s) beyond which a card advances.
	SwipeVelocity = 800
	// TapTolerance is the movement (px) under which a pointer-up counts as a tap.
	TapTolerance = 10
	// MaxDeleteDrag bounds the visual drag offset of a vocabulary item.
	MaxDeleteDrag = 100
)

// CardAction is the outcome of a flashcard swipe.
type CardAction int

const (
	ActionNone CardAction = iota
	ActionAdvanceRight
	ActionAdvanceLeft
)

func (a CardAction) String() string {
	switch a {
	case ActionAdvanceRight:
		return "advance-right"
	case ActionAdvanceLeft:
		return "advance-left"
	default:
		return "none"
	}
}

// ClassifyCard decides whether a flashcard swipe advances the deck.
// The card advances when the drag is longer than SwipeDistance or faster
// than SwipeVelocity; the direction follows the sign of the drag, or of the
// velocity for a flick with no net movement. Otherwise it snaps back.
func ClassifyCard(startX, endX, velocityX float64) CardAction {
	delta := endX - startX
	if math.Abs(delta) <= SwipeDistance && math.Abs(velocityX) <= SwipeVelocity {
		return ActionNone
	}

	sign := delta
	if sign == 0 {
		sign = velocityX
	}
	if sign > 0 {
		return ActionAdvanceRight
	}
	return ActionAdvanceLeft
}

// DeleteVariant selects the delete threshold of a vocabulary list item.
type DeleteVariant int

const (
	// VariantSwipe is the swipe-to-delete list (threshold 50px).
	VariantSwipe DeleteVariant = iota
	// VariantSimple is the plain draggable list (threshold 100px).
	VariantSimple
)

// Threshold returns the leftward distance a drag must exceed to delete.
func (v DeleteVariant) Threshold() float64 {
	if v == VariantSimple {
		return 100
	}
	return 50
}

// VocabAction is the outcome of a vocabulary item drag.
type VocabAction int

const (
	VocabNone VocabAction = iota
	VocabDelete
)

func (a VocabAction) String() string {
	if a == VocabDelete {
		return "delete"
	}
	return "none"
}

// ClassifyVocab decides whether a drag on a vocabulary item asks for delete
// confirmation. deltaX is negative for a leftward drag.
func ClassifyVocab(deltaX float64, variant DeleteVariant) VocabAction {
	if -deltaX > variant.Threshold() {
		return VocabDelete
	}
	return VocabNone
}

// ClampDrag converts a raw drag delta into the leftward offset used for
// visual feedback, clamped to [0, MaxDeleteDrag].
func ClampDrag(deltaX float64) float64 {
	return math.Max(0, math.Min(MaxDeleteDrag, -deltaX))
}

// IsTap reports whether a pointer movement is small enough to count as a tap.
// Any larger movement is a drag and must not flip the card.
func IsTap(dx, dy float64) bool {
	return math.Hypot(dx, dy) <= TapTolerance
}
