package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Contact is one lead-capture submission, optionally tied to a part.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	SiyamRef  string    `json:"siyam_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewContact(name, email, company, phone, siyamRef string) (*Contact, error) {
	contact := &Contact{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Company:   company,
		Phone:     phone,
		SiyamRef:  siyamRef,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *Contact) error
}
