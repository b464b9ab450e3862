package result

import "strings"

// Status is the engine-reported state of an asynchronous query job.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus maps an engine status string onto a Status. Strings the
// engine never documented map to StatusUnknown, not StatusFailed, so the
// caller can distinguish a job that failed from a protocol drift.
func ParseStatus(s string) Status {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RUNNING", "IN_PROGRESS":
		return StatusRunning
	case "SUCCESS", "SUCCEEDED", "COMPLETED":
		return StatusSuccess
	case "FAILED", "ERROR":
		return StatusFailed
	default:
		return StatusUnknown
	}
}
