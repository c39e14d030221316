package services

import (
	"shorecrew/internal/models"

	"github.com/jonboulle/clockwork"
)

// DefaultAvatar is used when an add request carries no avatar symbol.
const DefaultAvatar = "🌊"

// MutationHook runs synchronously after every roster mutation, before the
// mutating call returns. The storage keeper registers itself here so each
// add/remove completes its persistence write (and view invalidation) before
// the next mutation can begin.
type MutationHook interface {
	OnMutation() error
}

type RosterServiceInterface interface {
	AddCrewMember(name, role, avatar string) (models.CrewMember, error)
	RemoveCrewMember(id int64) error
	AddEvent(title, date, location, description string) (models.Event, error)
	RemoveEvent(id int64) error
	Crew() []models.CrewMember
	Events() []models.Event
	Counts() (crew int, events int)
	GetSnapshot() *models.StateV2
	PutState(crew []models.CrewMember, events []models.Event)
	SeedDemo() error
	SetMutationHook(hook MutationHook)
}

type RosterService struct {
	store *models.RosterStore
	hook  MutationHook
}

func NewRosterService(clock clockwork.Clock) RosterServiceInterface {
	return &RosterService{
		store: models.NewRosterStore(clock),
	}
}

func (rs *RosterService) SetMutationHook(hook MutationHook) {
	rs.hook = hook
}

func (rs *RosterService) afterMutation() error {
	if rs.hook == nil {
		return nil
	}
	return rs.hook.OnMutation()
}

// AddCrewMember appends a new member. Name and role are taken as-is, empty
// values included; an empty avatar falls back to the default symbol.
func (rs *RosterService) AddCrewMember(name, role, avatar string) (models.CrewMember, error) {
	if avatar == "" {
		avatar = DefaultAvatar
	}
	member := rs.store.AddCrewMember(name, role, avatar)
	return member, rs.afterMutation()
}

// RemoveCrewMember is a silent no-op for an absent id; the hook still fires,
// matching the unconditional re-render-and-persist of the add path.
func (rs *RosterService) RemoveCrewMember(id int64) error {
	rs.store.RemoveCrewMember(id)
	return rs.afterMutation()
}

func (rs *RosterService) AddEvent(title, date, location, description string) (models.Event, error) {
	event := rs.store.AddEvent(title, date, location, description)
	return event, rs.afterMutation()
}

func (rs *RosterService) RemoveEvent(id int64) error {
	rs.store.RemoveEvent(id)
	return rs.afterMutation()
}

func (rs *RosterService) Crew() []models.CrewMember {
	return rs.store.Crew()
}

func (rs *RosterService) Events() []models.Event {
	return rs.store.Events()
}

func (rs *RosterService) Counts() (int, int) {
	return rs.store.Counts()
}

func (rs *RosterService) GetSnapshot() *models.StateV2 {
	return rs.store.Snapshot()
}

// PutState hydrates the collections from a restored snapshot. It does not
// fire the mutation hook; restoring must not immediately rewrite the slot.
func (rs *RosterService) PutState(crew []models.CrewMember, events []models.Event) {
	rs.store.PutState(crew, events)
}

// SeedDemo loads the fixed sample roster through the regular add operations,
// so every insertion renders and persists individually.
func (rs *RosterService) SeedDemo() error {
	sampleCrew := []struct{ name, role, avatar string }{
		{"Maya Torres", "Crew Lead", "🐬"},
		{"Jonah Reyes", "Tide Spotter", "🦀"},
		{"Priya Shah", "Logistics", "🐢"},
	}
	for _, c := range sampleCrew {
		if _, err := rs.AddCrewMember(c.name, c.role, c.avatar); err != nil {
			return err
		}
	}

	sampleEvents := []struct{ title, date, location, description string }{
		{"Sunrise Sweep", "2026-09-12", "North Pier", "Gloves and grabbers provided, bring water."},
		{"Dune Restoration Day", "2026-09-26", "Breakwater Dunes", "Replanting sea grass after the cleanup."},
	}
	for _, e := range sampleEvents {
		if _, err := rs.AddEvent(e.title, e.date, e.location, e.description); err != nil {
			return err
		}
	}
	return nil
}
