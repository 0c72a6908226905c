package repositories

import (
	"context"

	"github.com/ghuser/personregistry/services/person/domain/models"
)

// PersonRepository is the persistence interface for the Person aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Single-record lookups return domain.ErrRecordNotFound when nothing
// matches; list lookups return an empty slice instead.
type PersonRepository interface {
	// Save persists a brand new Person.
	Save(ctx context.Context, person *models.Person) error

	// Update persists a rebuilt Person (update or inactivation) over the
	// record with the same id.
	Update(ctx context.Context, person *models.Person) error

	// FindAll returns every record, active or not, in persisted order.
	FindAll(ctx context.Context) ([]*models.Person, error)

	FindByID(ctx context.Context, id string) (*models.Person, error)
	FindByDocument(ctx context.Context, document string) (*models.Person, error)

	// FindByEmail resolves the record owning the given contact email.
	FindByEmail(ctx context.Context, email string) (*models.Person, error)

	// FindByName and FindByLastName match case-insensitively.
	FindByName(ctx context.Context, name string) ([]*models.Person, error)
	FindByLastName(ctx context.Context, lastName string) ([]*models.Person, error)
}
