// Package directory implements the list-visibility rules: who may see
// another user's wishlist, and under what password challenge.
package directory

import "github.com/nwatkins/wishlist/internal/models"

// State describes the outcome of selecting a user in the directory.
type State int

const (
	// StateUnselected means no directory selection is active; the viewer
	// sees their own list.
	StateUnselected State = iota

	// StateVisible means the selected user's list may be shown.
	StateVisible

	// StateBlocked means a selection was attempted and denied; no items
	// are fetched.
	StateBlocked
)

// String returns the wire representation of the state.
func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateBlocked:
		return "blocked"
	default:
		return "unselected"
	}
}

// Messages shown on blocked selections.
const (
	// MsgOwnList announces that the viewer picked themselves; their own
	// list is already on screen via the normal path.
	MsgOwnList = "that's your own list"

	// MsgWrongPassword announces a failed password challenge.
	MsgWrongPassword = "incorrect list password"
)

// Resolve applies the visibility rules for viewer selecting target with the
// supplied list password. It decides state only; the caller fetches items
// if and only if the result is StateVisible.
//
// Rules, in order:
//   - selecting yourself is blocked (announcement, not a data fetch)
//   - privacy disabled: visible, password ignored
//   - privacy enabled: visible only on an exact string match against the
//     stored list password
//
// There is no unlock memory: every selection of a private list re-runs the
// challenge, even for a target unlocked moments earlier.
func Resolve(viewer string, target *models.User, password string) (State, string) {
	if target.Email == viewer {
		return StateBlocked, MsgOwnList
	}
	if !target.Privacy {
		return StateVisible, ""
	}
	if password == target.ListPassword {
		return StateVisible, ""
	}
	return StateBlocked, MsgWrongPassword
}
