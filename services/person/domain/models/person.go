package models

import (
	"time"

	"github.com/google/uuid"

	persondomain "github.com/ghuser/personregistry/services/person/domain"
)

// Person is the sole aggregate of this bounded context. Instances are
// immutable once built: every mutation path produces a fresh copy.
type Person struct {
	ID        string
	Name      string
	LastName  string
	Document  string
	BirthDate time.Time
	Address   string
	Phones    []string
	Emails    []string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields carries the raw input for constructing a Person. BirthDate is a
// pointer so an absent date reports its own rule, distinct from an invalid
// one.
type Fields struct {
	Name      string
	LastName  string
	Document  string
	BirthDate *time.Time
	Address   string
	Phones    []string
	Emails    []string
}

// NewPerson validates fields in a fixed order (name, lastName, document,
// birthDate, address, phones, emails) and returns the first violated
// rule as a ValidationError. Callers rely on getting exactly the first
// failure, not an accumulated list.
//
// On success the returned Person has a generated id, active true, and
// createdAt == updatedAt == now.
func NewPerson(f Fields) (*Person, error) {
	p, err := validate(f)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p.ID = uuid.NewString()
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Rebuild validates fields with the same ordered rules as NewPerson but
// keeps the existing record's id, active flag and createdAt, refreshing
// only updatedAt. This is the copy-with-overrides path used by updates.
func Rebuild(existing *Person, f Fields) (*Person, error) {
	p, err := validate(f)
	if err != nil {
		return nil, err
	}

	p.ID = existing.ID
	p.Active = existing.Active
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	return p, nil
}

// Inactivate returns a copy of p with active false and a refreshed
// updatedAt; everything else, createdAt included, is preserved.
func (p *Person) Inactivate() *Person {
	out := p.clone()
	out.Active = false
	out.UpdatedAt = time.Now()
	return out
}

// Hydrate rebuilds a Person from persisted state without revalidating.
// Only stores should call it.
func Hydrate(id, name, lastName, document string, birthDate time.Time, address string,
	phones, emails []string, active bool, createdAt, updatedAt time.Time) *Person {
	return &Person{
		ID:        id,
		Name:      name,
		LastName:  lastName,
		Document:  document,
		BirthDate: birthDate,
		Address:   address,
		Phones:    phones,
		Emails:    emails,
		Active:    active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func (p *Person) clone() *Person {
	out := *p
	out.Phones = append([]string(nil), p.Phones...)
	out.Emails = append([]string(nil), p.Emails...)
	return &out
}

// validate applies the ordered field rules and assembles the field values
// into a Person with identity and lifecycle attributes still unset.
func validate(f Fields) (*Person, error) {
	if IsBlank(f.Name) {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgNameBlank}
	}
	if IsBlank(f.LastName) {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgLastNameBlank}
	}
	if IsBlank(f.Document) {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgDocumentNull}
	}
	if !ValidDocument(f.Document) {
		return nil, persondomain.Invalidf(persondomain.MsgDocumentInvalid, f.Document)
	}
	if f.BirthDate == nil {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgBirthDateNull}
	}
	if IsFutureDate(*f.BirthDate) {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgBirthDateFuture}
	}
	if IsBlank(f.Address) {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgAddressBlank}
	}
	if len(f.Phones) == 0 {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgPhonesEmpty}
	}
	for _, phone := range f.Phones {
		if !ValidPhone(phone) {
			return nil, persondomain.Invalidf(persondomain.MsgPhoneInvalid, phone)
		}
	}
	if len(f.Emails) == 0 {
		return nil, &persondomain.ValidationError{Message: persondomain.MsgEmailsEmpty}
	}
	for _, email := range f.Emails {
		if !ValidEmail(email) {
			return nil, persondomain.Invalidf(persondomain.MsgEmailInvalid, email)
		}
	}

	return &Person{
		Name:      f.Name,
		LastName:  f.LastName,
		Document:  f.Document,
		BirthDate: *f.BirthDate,
		Address:   f.Address,
		Phones:    append([]string(nil), f.Phones...),
		Emails:    append([]string(nil), f.Emails...),
	}, nil
}
