package application

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusInterviewing Status = "interviewing"
	StatusAccepted     Status = "accepted"
	StatusRejected     Status = "rejected"
)

// ParseStatus accepts any casing of the four statuses.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusInterviewing:
		return StatusInterviewing, nil
	case StatusAccepted:
		return StatusAccepted, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

// InterviewDetails is the schedule triple supplied alongside a status change.
type InterviewDetails struct {
	Date     *time.Time
	Time     string
	Location string
}

func (d InterviewDetails) Complete() bool {
	return d.Date != nil && d.Time != "" && d.Location != ""
}

// Transition applies a requested status to the application in place.
//
// This is a direct-set model: any status may be requested from any current
// status. The only hard guards are on the interview triple:
//   - interviewing requires a complete triple in the request and overwrites
//     whatever the application carried;
//   - accepted requires the application to already carry a triple, which is
//     left untouched;
//   - rejected always clears the triple;
//   - pending changes the status only.
//
// On error the application is left unchanged.
func Transition(a *Application, next Status, details InterviewDetails) error {
	switch next {
	case StatusInterviewing:
		if !details.Complete() {
			return ErrInterviewDetailsRequired
		}
		d := details.Date.UTC()
		a.InterviewDate = &d
		a.InterviewTime = details.Time
		a.InterviewLocation = details.Location
	case StatusAccepted:
		if !a.HasInterviewDetails() {
			return ErrInterviewDetailsMissing
		}
	case StatusRejected:
		a.clearInterviewDetails()
	case StatusPending:
		// status only; the triple survives a move back to pending
	default:
		return ErrInvalidStatus
	}
	a.Status = next
	return nil
}
