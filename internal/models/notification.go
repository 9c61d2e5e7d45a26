package models

import (
	"fmt"
	"time"
)

// Status is the terminal outcome of a sort run
type Status int

const (
	StatusCompleted Status = iota
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// AbortedMessage is reported when a run is cancelled before finishing
const AbortedMessage = "Processing aborted."

// Notification is a message posted by the sort worker to the controller.
// The set of implementations is closed: Progress, Completed and Cancelled.
type Notification interface {
	notification()
}

// Completion is a terminal notification. A run posts exactly one.
type Completion interface {
	Notification
	Status() Status
	Message() string
}

// Progress reports the fraction of outer passes started, in [0,1]
type Progress struct {
	Fraction float64
}

// Completed reports a finished sort
type Completed struct {
	Sample  float64
	Elapsed time.Duration
}

// Cancelled reports a run stopped at an outer pass boundary
type Cancelled struct {
	Pass int
}

func (Progress) notification()  {}
func (Completed) notification() {}
func (Cancelled) notification() {}

func (Completed) Status() Status { return StatusCompleted }

func (c Completed) Message() string {
	return fmt.Sprintf("The first number is: %f. Processing time: %.2f [ms]", c.Sample, c.ElapsedMillis())
}

// ElapsedMillis returns the run duration in fractional milliseconds
func (c Completed) ElapsedMillis() float64 {
	return float64(c.Elapsed) / float64(time.Millisecond)
}

func (Cancelled) Status() Status  { return StatusCancelled }
func (Cancelled) Message() string { return AbortedMessage }
