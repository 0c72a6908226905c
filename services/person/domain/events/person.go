package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/personregistry/services/person/domain/models"
)

// Watermill topics for the person bounded context. Inactivation is an
// update with Active false, so it travels on TopicPersonUpdated.
const (
	TopicPersonCreated = "person.created"
	TopicPersonUpdated = "person.updated"
)

// PersonEvent is published after a Person is persisted (created or
// updated). It carries a full snapshot so consumers can maintain read
// models without calling back into the API.
type PersonEvent struct {
	EventID    uuid.UUID      `json:"event_id"` // unique publish-time identifier for deduplication
	Version    int            `json:"version"`  // schema version; increment on breaking changes
	Person     PersonSnapshot `json:"person"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// PersonSnapshot is the event-wire representation of a Person.
type PersonSnapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Document  string    `json:"document"`
	BirthDate time.Time `json:"birthDate"`
	Address   string    `json:"address"`
	Phones    []string  `json:"phones"`
	Emails    []string  `json:"emails"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPersonEvent snapshots person into a versioned event envelope.
func NewPersonEvent(person *models.Person) PersonEvent {
	return PersonEvent{
		EventID:    uuid.New(),
		Version:    1,
		OccurredAt: person.UpdatedAt,
		Person: PersonSnapshot{
			ID:        person.ID,
			Name:      person.Name,
			LastName:  person.LastName,
			Document:  person.Document,
			BirthDate: person.BirthDate,
			Address:   person.Address,
			Phones:    person.Phones,
			Emails:    person.Emails,
			Active:    person.Active,
			CreatedAt: person.CreatedAt,
			UpdatedAt: person.UpdatedAt,
		},
	}
}
