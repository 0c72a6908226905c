// Package services contains stateless domain services for the person
// bounded context.
package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	persondomain "github.com/ghuser/personregistry/services/person/domain"
	"github.com/ghuser/personregistry/services/person/domain/models"
)

// Lookup is the slice of the repository the uniqueness checks need.
type Lookup interface {
	FindByDocument(ctx context.Context, document string) (*models.Person, error)
	FindByEmail(ctx context.Context, email string) (*models.Person, error)
}

// UniquenessChecker decides whether a validated candidate may be persisted
// without violating the global document and email uniqueness rules.
//
// The create and update paths differ on purpose: on create any match is a
// conflict, while on update a match belonging to the candidate's own
// record is tolerated. Collapsing the two either blocks legitimate no-op
// updates or lets a second record take over a taken document or email.
type UniquenessChecker struct {
	lookup Lookup
}

// NewUniquenessChecker returns a checker backed by the given lookup.
func NewUniquenessChecker(lookup Lookup) *UniquenessChecker {
	return &UniquenessChecker{lookup: lookup}
}

// CheckCreate fails with a ConflictError if the candidate's document or
// any of its emails already belongs to a persisted record. The document
// is checked first; email lookups then fan out concurrently and the first
// conflict wins.
func (c *UniquenessChecker) CheckCreate(ctx context.Context, candidate *models.Person) error {
	if _, err := c.lookup.FindByDocument(ctx, candidate.Document); err == nil {
		return persondomain.Conflictf(persondomain.MsgDocumentTaken, candidate.Document)
	} else if !errors.Is(err, persondomain.ErrRecordNotFound) {
		return err
	}

	return c.checkEmails(ctx, candidate, func(*models.Person) bool { return true })
}

// CheckUpdate applies the same lookups as CheckCreate but tolerates
// matches whose id equals the candidate's own: a record keeping its
// current document or email is not in conflict with itself.
func (c *UniquenessChecker) CheckUpdate(ctx context.Context, candidate *models.Person) error {
	owner, err := c.lookup.FindByDocument(ctx, candidate.Document)
	switch {
	case err == nil:
		if owner.ID != candidate.ID {
			return persondomain.Conflictf(persondomain.MsgDocumentTaken, candidate.Document)
		}
	case !errors.Is(err, persondomain.ErrRecordNotFound):
		return err
	}

	return c.checkEmails(ctx, candidate, func(owner *models.Person) bool {
		return owner.ID != candidate.ID
	})
}

// checkEmails looks up every candidate email concurrently. A hit for which
// conflicts reports true fails the whole check; errgroup guarantees the
// first failure is the one surfaced and that a conflict is never masked by
// another email's absence.
func (c *UniquenessChecker) checkEmails(ctx context.Context, candidate *models.Person, conflicts func(owner *models.Person) bool) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, email := range candidate.Emails {
		g.Go(func() error {
			owner, err := c.lookup.FindByEmail(ctx, email)
			if errors.Is(err, persondomain.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			if conflicts(owner) {
				return persondomain.Conflictf(persondomain.MsgEmailTaken, email)
			}
			return nil
		})
	}
	return g.Wait()
}
