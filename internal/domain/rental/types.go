package rental

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

var ErrIllegalTransition = errors.New("illegal rental state transition")

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusClosed    Status = "CLOSED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusCancelled:
		return true
	default:
		return false
	}
}

const (
	eventClose  = "close"
	eventCancel = "cancel"
)

// CLOSED and CANCELLED are terminal.
func newMachine(current Status) *fsm.FSM {
	return fsm.NewFSM(
		current.String(),
		fsm.Events{
			{Name: eventClose, Src: []string{StatusOpen.String()}, Dst: StatusClosed.String()},
			{Name: eventCancel, Src: []string{StatusOpen.String()}, Dst: StatusCancelled.String()},
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
