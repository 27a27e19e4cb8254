package state

import (
	"github.com/google/uuid"
)

// NewStrokeID is swapped out by tests that need predictable IDs.
var NewStrokeID = func() string {
	return uuid.NewString()
}
