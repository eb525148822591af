package state

import (
	"time"

	"github.com/google/uuid"
)

var sessionID = uuid.NewString()

// SessionID identifies this run of the whiteboard in logs.
func SessionID() string { return sessionID }

// Clock returns the current time. Tests replace it to pin export dates.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }
