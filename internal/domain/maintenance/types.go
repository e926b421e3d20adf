package maintenance

import (
	"context"
	"errors"
	"time"

	"github.com/looplab/fsm"
)

var (
	ErrIllegalTransition      = errors.New("illegal maintenance state transition")
	ErrScheduledDateRequired  = errors.New("scheduled date is required")
	ErrScheduledDateInPast    = errors.New("scheduled date must not be in the past")
	ErrScheduledDateLocked    = errors.New("scheduled date can no longer be changed")
	ErrPerformedDateRequired  = errors.New("performed date is required")
	ErrPerformedDateForbidden = errors.New("performed date is not allowed in this state")
)

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

const (
	eventStart    = "start"
	eventComplete = "complete"
	eventCancel   = "cancel"
)

func newMachine(current Status) *fsm.FSM {
	return fsm.NewFSM(
		current.String(),
		fsm.Events{
			{Name: eventStart, Src: []string{StatusScheduled.String()}, Dst: StatusInProgress.String()},
			{Name: eventComplete, Src: []string{StatusScheduled.String(), StatusInProgress.String()}, Dst: StatusCompleted.String()},
			{Name: eventCancel, Src: []string{StatusScheduled.String()}, Dst: StatusCancelled.String()},
		},
		nil,
	)
}

func transition(current Status, event string) (Status, error) {
	m := newMachine(current)
	if err := m.Event(context.Background(), event); err != nil {
		return current, ErrIllegalTransition
	}
	return Status(m.Current()), nil
}

type requirement int

const (
	optional requirement = iota
	required
	forbidden
	locked
)

type fieldRules struct {
	scheduledDate     requirement
	performedDate     requirement
	scheduledNotInPast bool
}

// One table instead of validation branches scattered per transition:
// what each state demands of its date fields.
var rulesByStatus = map[Status]fieldRules{
	StatusScheduled:  {scheduledDate: required, performedDate: forbidden, scheduledNotInPast: true},
	StatusInProgress: {scheduledDate: locked, performedDate: forbidden},
	StatusCompleted:  {scheduledDate: optional, performedDate: required},
	StatusCancelled:  {scheduledDate: optional, performedDate: forbidden},
}

func validateFields(status Status, scheduledDate, performedDate *time.Time, today time.Time) error {
	rules := rulesByStatus[status]

	switch rules.scheduledDate {
	case required:
		if scheduledDate == nil {
			return ErrScheduledDateRequired
		}
	case forbidden:
		if scheduledDate != nil {
			return ErrScheduledDateLocked
		}
	}
	if rules.scheduledNotInPast && scheduledDate != nil && scheduledDate.Before(today) {
		return ErrScheduledDateInPast
	}

	switch rules.performedDate {
	case required:
		if performedDate == nil {
			return ErrPerformedDateRequired
		}
	case forbidden:
		if performedDate != nil {
			return ErrPerformedDateForbidden
		}
	}
	return nil
}
