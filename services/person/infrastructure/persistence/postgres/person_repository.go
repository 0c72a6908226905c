package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/personregistry/pkg/database"
	"github.com/ghuser/personregistry/pkg/events"
	persondomain "github.com/ghuser/personregistry/services/person/domain"
	domainevents "github.com/ghuser/personregistry/services/person/domain/events"
	"github.com/ghuser/personregistry/services/person/domain/models"
)

// Unique constraint names from the migrations. A 23505 on one of these is
// a concurrent-writer race the pre-check could not see; it maps to the
// same conflict error the checker produces.
const (
	documentConstraint = "persons_document_key"
	emailConstraint    = "person_emails_email_key"
)

// PersonRepository implements repositories.PersonRepository against
// PostgreSQL. Phones and emails live in child tables keyed by position so
// order survives round-trips and each email carries a unique index.
type PersonRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewPersonRepository returns a PersonRepository backed by the given pool
// and event bus. The bus publishes person events in the same transaction
// as the write; pass nil to disable publishing.
func NewPersonRepository(db *database.Database, bus *events.EventBus) *PersonRepository {
	return &PersonRepository{db: db, bus: bus}
}

// Save persists a new Person and publishes person.created transactionally.
func (r *PersonRepository) Save(ctx context.Context, person *models.Person) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO persons (id, name, last_name, document, birth_date, address, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			person.ID, person.Name, person.LastName, person.Document, person.BirthDate,
			person.Address, person.Active, person.CreatedAt, person.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert person: %w", mapUniqueViolation(err, person))
		}

		if err := insertContacts(ctx, tx, person); err != nil {
			return err
		}

		return r.publish(tx, domainevents.TopicPersonCreated, person)
	})
}

// Update rewrites the record with the same id, replaces its contact rows
// and publishes person.updated transactionally.
func (r *PersonRepository) Update(ctx context.Context, person *models.Person) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE persons
			SET name = $2, last_name = $3, document = $4, birth_date = $5,
			    address = $6, active = $7, updated_at = $8
			WHERE id = $1`,
			person.ID, person.Name, person.LastName, person.Document, person.BirthDate,
			person.Address, person.Active, person.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update person: %w", mapUniqueViolation(err, person))
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return persondomain.ErrRecordNotFound
		}

		for _, table := range []string{"person_phones", "person_emails"} {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE person_id = $1`, table), person.ID); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		if err := insertContacts(ctx, tx, person); err != nil {
			return err
		}

		return r.publish(tx, domainevents.TopicPersonUpdated, person)
	})
}

// FindAll returns every record in insertion order.
func (r *PersonRepository) FindAll(ctx context.Context) ([]*models.Person, error) {
	return r.queryMany(ctx, `
		SELECT id, name, last_name, document, birth_date, address, active, created_at, updated_at
		FROM persons ORDER BY created_at, id`)
}

// FindByID retrieves a Person by id.
func (r *PersonRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	return r.queryOne(ctx, `
		SELECT id, name, last_name, document, birth_date, address, active, created_at, updated_at
		FROM persons WHERE id = $1`, id)
}

// FindByDocument retrieves the Person owning the given document.
func (r *PersonRepository) FindByDocument(ctx context.Context, document string) (*models.Person, error) {
	return r.queryOne(ctx, `
		SELECT id, name, last_name, document, birth_date, address, active, created_at, updated_at
		FROM persons WHERE document = $1`, document)
}

// FindByEmail retrieves the Person owning the given contact email.
func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	return r.queryOne(ctx, `
		SELECT p.id, p.name, p.last_name, p.document, p.birth_date, p.address, p.active, p.created_at, p.updated_at
		FROM persons p JOIN person_emails e ON e.person_id = p.id
		WHERE e.email = $1`, email)
}

// FindByName matches case-insensitively on first name.
func (r *PersonRepository) FindByName(ctx context.Context, name string) ([]*models.Person, error) {
	return r.queryMany(ctx, `
		SELECT id, name, last_name, document, birth_date, address, active, created_at, updated_at
		FROM persons WHERE lower(name) = lower($1) ORDER BY created_at, id`, name)
}

// FindByLastName matches case-insensitively on last name.
func (r *PersonRepository) FindByLastName(ctx context.Context, lastName string) ([]*models.Person, error) {
	return r.queryMany(ctx, `
		SELECT id, name, last_name, document, birth_date, address, active, created_at, updated_at
		FROM persons WHERE lower(last_name) = lower($1) ORDER BY created_at, id`, lastName)
}

func (r *PersonRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Person, error) {
	row := r.db.DB().QueryRowContext(ctx, query, args...)
	person, err := scanPerson(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persondomain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query person: %w", err)
	}
	if err := r.loadContacts(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (r *PersonRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Person, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		person, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}

	for _, person := range persons {
		if err := r.loadContacts(ctx, person); err != nil {
			return nil, err
		}
	}
	return persons, nil
}

// loadContacts fills phones and emails from the child tables in stored order.
func (r *PersonRepository) loadContacts(ctx context.Context, person *models.Person) error {
	var err error
	if person.Phones, err = r.contactValues(ctx, "person_phones", "phone", person.ID); err != nil {
		return err
	}
	person.Emails, err = r.contactValues(ctx, "person_emails", "email", person.ID)
	return err
}

func (r *PersonRepository) contactValues(ctx context.Context, table, column, personID string) ([]string, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE person_id = $1 ORDER BY position`, column, table), personID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func insertContacts(ctx context.Context, tx *sql.Tx, person *models.Person) error {
	for i, phone := range person.Phones {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO person_phones (person_id, position, phone) VALUES ($1, $2, $3)`,
			person.ID, i, phone); err != nil {
			return fmt.Errorf("insert phone: %w", err)
		}
	}
	for i, email := range person.Emails {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO person_emails (person_id, position, email) VALUES ($1, $2, $3)`,
			person.ID, i, email); err != nil {
			return fmt.Errorf("insert email: %w", mapUniqueViolation(err, person))
		}
	}
	return nil
}

func (r *PersonRepository) publish(tx *sql.Tx, topic string, person *models.Person) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.NewPersonEvent(person)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// mapUniqueViolation converts a 23505 on one of the uniqueness constraints
// into the matching ConflictError; other errors pass through.
func mapUniqueViolation(err error, person *models.Person) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch pgErr.ConstraintName {
	case documentConstraint:
		return persondomain.Conflictf(persondomain.MsgDocumentTaken, person.Document)
	case emailConstraint:
		if email := duplicateValue(pgErr.Detail); email != "" {
			return persondomain.Conflictf(persondomain.MsgEmailTaken, email)
		}
		return persondomain.Conflictf(persondomain.MsgEmailTaken, strings.Join(person.Emails, ", "))
	}
	return err
}

// duplicateValue extracts the offending value from postgres detail text of
// the form `Key (email)=(x@y.com) already exists.`.
func duplicateValue(detail string) string {
	start := strings.Index(detail, ")=(")
	if start < 0 {
		return ""
	}
	rest := detail[start+3:]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var (
		p         models.Person
		birthDate time.Time
	)
	if err := scan(&p.ID, &p.Name, &p.LastName, &p.Document, &birthDate,
		&p.Address, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.BirthDate = birthDate
	return &p, nil
}
