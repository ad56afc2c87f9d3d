package application

import (
	"fmt"
	"slices"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
)

type Event string

const (
	EventSubmit          Event = "submit"
	EventGuardianApprove Event = "guardian_approve"
	EventGuardianReject  Event = "guardian_reject"
	EventUnitApprove     Event = "unit_approve"
	EventUnitReject      Event = "unit_reject"
	EventPayFees         Event = "pay_fees"
	EventRecord          Event = "record"
)

// Transition is one row of the workflow table. To holds every status the event may
// lead to; unit approval branches on the unit's LDS flag.
type Transition struct {
	From  Status
	Event Event
	Roles []security.Role
	To    []Status
}

type edge struct {
	from  Status
	event Event
}

var transitions = []Transition{
	{From: StatusCreated, Event: EventSubmit, To: []Status{StatusGuardianApproval}},
	{From: StatusGuardianApproval, Event: EventGuardianApprove, Roles: []security.Role{security.RoleGuardian}, To: []Status{StatusUnitApproval}},
	{From: StatusGuardianApproval, Event: EventGuardianReject, Roles: []security.Role{security.RoleGuardian}, To: []Status{StatusRejected}},
	{From: StatusUnitApproval, Event: EventUnitApprove, Roles: []security.Role{security.RoleUnitAdmin}, To: []Status{StatusFeePending, StatusReadyToRecord}},
	{From: StatusUnitApproval, Event: EventUnitReject, Roles: []security.Role{security.RoleUnitAdmin}, To: []Status{StatusRejected}},
	{From: StatusFeePending, Event: EventPayFees, Roles: []security.Role{security.RoleCouncilEmployee}, To: []Status{StatusReadyToRecord}},
	{From: StatusReadyToRecord, Event: EventRecord, Roles: []security.Role{security.RoleCouncilEmployee}, To: []Status{StatusComplete}},
}

var (
	byEdge  = map[edge]Transition{}
	byEvent = map[Event]Transition{}
)

func init() {
	for _, t := range transitions {
		byEdge[edge{t.From, t.Event}] = t
		byEvent[t.Event] = t
	}
}

// Transitions returns a copy of the workflow table.
func Transitions() []Transition { return slices.Clone(transitions) }

// Lookup finds the transition for event fired from status from.
func Lookup(from Status, ev Event) (Transition, bool) {
	t, ok := byEdge[edge{from, ev}]
	return t, ok
}

// RolesFor returns the roles allowed to fire ev. Every event has a single source status.
func RolesFor(ev Event) []security.Role { return byEvent[ev].Roles }

// CanFire fails with entity.ErrInvalidAction when ev cannot fire from the current status.
func (a *Application) CanFire(ev Event) error {
	if _, ok := Lookup(a.Status, ev); ok {
		return nil
	}
	t, known := byEvent[ev]
	if !known {
		return fmt.Errorf("application: unknown event %q", ev)
	}
	return entity.InvalidAction(fmt.Sprintf(
		"%s is only allowed for applications in %q status; current status: %q", ev, t.From, a.Status))
}

// Fire moves the application to status to along the ev edge.
func (a *Application) Fire(ev Event, to Status) error {
	if err := a.CanFire(ev); err != nil {
		return err
	}
	t, _ := Lookup(a.Status, ev)
	if !slices.Contains(t.To, to) {
		return fmt.Errorf("application: %s cannot lead to %q", ev, to)
	}
	a.Status = to
	return nil
}
