package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/personregistry/services/person/domain/models"
)

const dateLayout = "2006-01-02"

// Date is a calendar date that serializes as ISO "2006-01-02".
type Date struct {
	time.Time
}

// UnmarshalJSON accepts a quoted ISO date or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as a quoted ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// PersonRequest is the body of POST /person and each element of
// POST /persons.
type PersonRequest struct {
	Name      string   `json:"name"      example:"Lucas"`
	LastName  string   `json:"lastName"  example:"Silva"`
	Document  string   `json:"document"  example:"42536250881"`
	BirthDate *Date    `json:"birthDate" swaggertype:"string" example:"1990-04-12"`
	Address   string   `json:"address"   example:"Rua das Flores, 100"`
	Phones    []string `json:"phones"    example:"16982532656"`
	Emails    []string `json:"emails"    example:"lucas@gmail.com"`
} // @name PersonRequest

// UpdatePersonRequest is PersonRequest plus the id of the record to change.
type UpdatePersonRequest struct {
	PersonRequest
	ID string `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name UpdatePersonRequest

// fields maps the request body onto the domain's raw field set. An absent
// or null birthDate stays nil so the domain reports its own rule.
func (r PersonRequest) fields() models.Fields {
	var birthDate *time.Time
	if r.BirthDate != nil && !r.BirthDate.IsZero() {
		t := r.BirthDate.Time
		birthDate = &t
	}
	return models.Fields{
		Name:      r.Name,
		LastName:  r.LastName,
		Document:  r.Document,
		BirthDate: birthDate,
		Address:   r.Address,
		Phones:    r.Phones,
		Emails:    r.Emails,
	}
}

// PersonResponse is the wire representation of a Person.
type PersonResponse struct {
	ID        string    `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"      example:"Lucas"`
	LastName  string    `json:"lastName"  example:"Silva"`
	Document  string    `json:"document"  example:"42536250881"`
	BirthDate Date      `json:"birthDate" swaggertype:"string" example:"1990-04-12"`
	Address   string    `json:"address"   example:"Rua das Flores, 100"`
	Phones    []string  `json:"phones"    example:"16982532656"`
	Emails    []string  `json:"emails"    example:"lucas@gmail.com"`
	Active    bool      `json:"active"    example:"true"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name PersonResponse

func newPersonResponse(p *models.Person) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		LastName:  p.LastName,
		Document:  p.Document,
		BirthDate: Date{p.BirthDate},
		Address:   p.Address,
		Phones:    p.Phones,
		Emails:    p.Emails,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPersonResponses(persons []*models.Person) []PersonResponse {
	out := make([]PersonResponse, len(persons))
	for i, p := range persons {
		out[i] = newPersonResponse(p)
	}
	return out
}
