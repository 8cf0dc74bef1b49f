package workflow

const (
	// Signal names
	TickSignalName         = "tick"
	SessionEndedSignalName = "session-ended"
)

// TickSignal is sent after every successful billing tick and keeps the watchdog from
// declaring the session abandoned.
type TickSignal struct {
	BilledMinutes int64 `json:"billed_minutes"`
}

// SessionEndedSignal tells the watchdog the session reached a terminal state by other means.
type SessionEndedSignal struct {
	Reason string `json:"reason"`
}
