package runner

// Status is the lifecycle state of a run.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING   = Status(0) // running
	STATUS_EXHAUSTED = Status(1) // exhausted
	STATUS_CYCLING   = Status(2) // cycling
)
