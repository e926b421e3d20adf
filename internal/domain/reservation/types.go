package reservation

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

var ErrIllegalTransition = errors.New("illegal reservation state transition")

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

const (
	eventConfirm  = "confirm"
	eventComplete = "complete"
	eventCancel   = "cancel"
)

// Cancelling a CONFIRMED reservation is allowed; the caller must also
// cancel the rental that descended from it.
func newMachine(current Status) *fsm.FSM {
	return fsm.NewFSM(
		current.String(),
		fsm.Events{
			{Name: eventConfirm, Src: []string{StatusPending.String()}, Dst: StatusConfirmed.String()},
			{Name: eventComplete, Src: []string{StatusConfirmed.String()}, Dst: StatusCompleted.String()},
			{Name: eventCancel, Src: []string{StatusPending.String(), StatusConfirmed.String()}, Dst: StatusCancelled.String()},
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
