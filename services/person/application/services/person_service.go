package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/personregistry/pkg/cache"
	"github.com/ghuser/personregistry/pkg/logger"
	persondomain "github.com/ghuser/personregistry/services/person/domain"
	"github.com/ghuser/personregistry/services/person/domain/models"
	"github.com/ghuser/personregistry/services/person/domain/repositories"
	domainsvcs "github.com/ghuser/personregistry/services/person/domain/services"
)

// PersonService orchestrates the person operations: list, find, create,
// batch create, update and inactivate. Every write runs the same pipeline:
// build a validated candidate, check uniqueness against persisted state,
// persist. Lookups bypass construction entirely.
type PersonService struct {
	repo   repositories.PersonRepository
	checks *domainsvcs.UniquenessChecker
	cache  *pkgcache.PersonCache
	log    logger.Logger
}

// NewPersonService wires the service with its repository, uniqueness
// checker, optional cache and logger.
func NewPersonService(repo repositories.PersonRepository, checks *domainsvcs.UniquenessChecker, personCache *pkgcache.PersonCache, log logger.Logger) *PersonService {
	return &PersonService{repo: repo, checks: checks, cache: personCache, log: log}
}

// List returns every record, active or not, in persisted order.
func (s *PersonService) List(ctx context.Context) ([]*models.Person, error) {
	persons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

// Find applies at most one criterion, in priority order: a checksum-valid
// document wins over name, name over lastName. With no usable criterion
// the result is empty, never an error.
func (s *PersonService) Find(ctx context.Context, name, lastName, document string) ([]*models.Person, error) {
	if !models.IsBlank(document) && models.ValidDocument(document) {
		p, err := s.repo.FindByDocument(ctx, document)
		if errors.Is(err, persondomain.ErrRecordNotFound) {
			return []*models.Person{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("find by document: %w", err)
		}
		return []*models.Person{p}, nil
	}

	if !models.IsBlank(name) {
		persons, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("find by name: %w", err)
		}
		return persons, nil
	}

	if !models.IsBlank(lastName) {
		persons, err := s.repo.FindByLastName(ctx, lastName)
		if err != nil {
			return nil, fmt.Errorf("find by last name: %w", err)
		}
		return persons, nil
	}

	return []*models.Person{}, nil
}

// Create validates, checks uniqueness and persists a new Person.
func (s *PersonService) Create(ctx context.Context, fields models.Fields) (*models.Person, error) {
	candidate, err := models.NewPerson(fields)
	if err != nil {
		return nil, err
	}

	if err := s.checks.CheckCreate(ctx, candidate); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, candidate); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "person created", "person_id", candidate.ID)
	return candidate, nil
}

// CreateMany applies Create to each input independently. A failed item is
// logged and dropped, never propagated, and the pipeline continues; the
// result holds only the persisted persons, in input order.
func (s *PersonService) CreateMany(ctx context.Context, fields []models.Fields) ([]*models.Person, error) {
	created := make([]*models.Person, 0, len(fields))
	for i, f := range fields {
		person, err := s.Create(ctx, f)
		if err != nil {
			s.log.WarnContext(ctx, "batch item discarded", "index", i, "reason", err)
			continue
		}
		created = append(created, person)
	}
	return created, nil
}

// Update resolves the existing record by id, rebuilds it from fields
// preserving id, active flag and createdAt, re-checks uniqueness with
// self-matches tolerated, and persists.
func (s *PersonService) Update(ctx context.Context, id string, fields models.Fields) (*models.Person, error) {
	if models.IsBlank(id) {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgIDBlank}
	}

	existing, err := s.resolveByID(ctx, id)
	if errors.Is(err, persondomain.ErrRecordNotFound) {
		return nil, persondomain.NotFoundf(persondomain.MsgPersonNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve person %s: %w", id, err)
	}

	candidate, err := models.Rebuild(existing, fields)
	if err != nil {
		return nil, err
	}

	if err := s.checks.CheckUpdate(ctx, candidate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.InfoContext(ctx, "person updated", "person_id", id)
	return candidate, nil
}

// Inactivate flips the record's active flag off and refreshes updatedAt.
// An unknown id is a successful no-op: the result is (nil, nil).
func (s *PersonService) Inactivate(ctx context.Context, id string) (*models.Person, error) {
	existing, err := s.resolveByID(ctx, id)
	if errors.Is(err, persondomain.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve person %s: %w", id, err)
	}

	inactivated := existing.Inactivate()
	if err := s.repo.Update(ctx, inactivated); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.InfoContext(ctx, "person inactivated", "person_id", id)
	return inactivated, nil
}

// resolveByID serves reads from the Redis read model when possible and
// falls back to the repository. Cache errors other than a miss are
// ignored; the repository stays authoritative.
func (s *PersonService) resolveByID(ctx context.Context, id string) (*models.Person, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return models.Hydrate(
				cached.ID, cached.Name, cached.LastName, cached.Document,
				cached.BirthDate, cached.Address, cached.Phones, cached.Emails,
				cached.Active, cached.CreatedAt, cached.UpdatedAt,
			), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "person cache read failed", "person_id", id, "error", err)
		}
	}

	return s.repo.FindByID(ctx, id)
}

// invalidate drops the read-model entry after a mutation so stale data is
// never served before the worker refreshes it.
func (s *PersonService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "person cache invalidation failed", "person_id", id, "error", err)
	}
}
