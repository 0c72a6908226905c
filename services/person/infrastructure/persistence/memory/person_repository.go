// Package memory holds an in-memory PersonRepository used by tests and
// local development. It mirrors the postgres implementation's contract,
// including insertion-order listing and unique-value lookups.
package memory

import (
	"context"
	"strings"
	"sync"

	persondomain "github.com/ghuser/personregistry/services/person/domain"
	"github.com/ghuser/personregistry/services/person/domain/models"
)

// PersonRepository is a mutex-guarded map store. Persons are copied on the
// way in and out so callers never share aliases with the store.
type PersonRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.Person
	ordered []string
}

// NewPersonRepository returns an empty in-memory repository.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{byID: map[string]*models.Person{}}
}

// Save stores a new Person.
func (r *PersonRepository) Save(_ context.Context, person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[person.ID]; !ok {
		r.ordered = append(r.ordered, person.ID)
	}
	r.byID[person.ID] = clone(person)
	return nil
}

// Update overwrites the record with the same id.
func (r *PersonRepository) Update(_ context.Context, person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[person.ID]; !ok {
		return persondomain.ErrRecordNotFound
	}
	r.byID[person.ID] = clone(person)
	return nil
}

// FindAll returns every record in insertion order.
func (r *PersonRepository) FindAll(_ context.Context) ([]*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Person, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, clone(r.byID[id]))
	}
	return out, nil
}

// FindByID resolves a record by id.
func (r *PersonRepository) FindByID(_ context.Context, id string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byID[id]; ok {
		return clone(p), nil
	}
	return nil, persondomain.ErrRecordNotFound
}

// FindByDocument resolves the record owning the given document.
func (r *PersonRepository) FindByDocument(_ context.Context, document string) (*models.Person, error) {
	return r.findFirst(func(p *models.Person) bool { return p.Document == document })
}

// FindByEmail resolves the record owning the given contact email.
func (r *PersonRepository) FindByEmail(_ context.Context, email string) (*models.Person, error) {
	return r.findFirst(func(p *models.Person) bool {
		for _, e := range p.Emails {
			if e == email {
				return true
			}
		}
		return false
	})
}

// FindByName matches case-insensitively on first name.
func (r *PersonRepository) FindByName(_ context.Context, name string) ([]*models.Person, error) {
	return r.filter(func(p *models.Person) bool { return strings.EqualFold(p.Name, name) })
}

// FindByLastName matches case-insensitively on last name.
func (r *PersonRepository) FindByLastName(_ context.Context, lastName string) ([]*models.Person, error) {
	return r.filter(func(p *models.Person) bool { return strings.EqualFold(p.LastName, lastName) })
}

func (r *PersonRepository) findFirst(match func(*models.Person) bool) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.ordered {
		if p := r.byID[id]; match(p) {
			return clone(p), nil
		}
	}
	return nil, persondomain.ErrRecordNotFound
}

func (r *PersonRepository) filter(match func(*models.Person) bool) ([]*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*models.Person{}
	for _, id := range r.ordered {
		if p := r.byID[id]; match(p) {
			out = append(out, clone(p))
		}
	}
	return out, nil
}

func clone(p *models.Person) *models.Person {
	out := *p
	out.Phones = append([]string(nil), p.Phones...)
	out.Emails = append([]string(nil), p.Emails...)
	return &out
}
