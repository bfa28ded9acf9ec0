package model

// SessionStatus represents the status of a download session
type SessionStatus string

const (
	// SessionIdle means no download is running
	SessionIdle SessionStatus = "Idle"

	// SessionInFlight means a download request has been issued but not yet resolved
	SessionInFlight SessionStatus = "InFlight"

	// SessionCompleted means the last download delivered a file
	SessionCompleted SessionStatus = "Completed"

	// SessionFailed means the last download ended with an error
	SessionFailed SessionStatus = "Failed"
)

// String returns the string representation of SessionStatus
func (ss SessionStatus) String() string {
	return string(ss)
}

// IsActive returns true if a transfer is running
func (ss SessionStatus) IsActive() bool {
	return ss == SessionInFlight
}

// IsFinished returns true if the session reached a terminal outcome (completed or failed)
func (ss SessionStatus) IsFinished() bool {
	return ss == SessionCompleted || ss == SessionFailed
}
