package service

import (
	"context"
	"time"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/repo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type contactService struct {
	contacts repo.ContactRepo
	v        *validator.Validate
	now      func() time.Time
}

func New(contacts repo.ContactRepo, v *validator.Validate) Service {
	return &contactService{contacts: contacts, v: v, now: time.Now}
}

// NewWithClock is for tests that need a fixed today.
func NewWithClock(contacts repo.ContactRepo, v *validator.Validate, now func() time.Time) Service {
	return &contactService{contacts: contacts, v: v, now: now}
}

func (s *contactService) List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]model.Contact, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.contacts.ListContacts(ctx, ownerID, skip, limit)
}

func (s *contactService) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Contact, error) {
	return s.contacts.GetContact(ctx, ownerID, id)
}

func (s *contactService) Create(ctx context.Context, ownerID uuid.UUID, in dto.ContactDTO) (model.Contact, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Contact{}, customErrors.NewInvalidArgument(err.Error())
	}

	contact := model.Contact{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PhoneNumbers:     in.PhoneNumbers,
		BirthdayDate:     in.BirthdayDate,
		OtherDescription: in.OtherDescription,
	}
	if _, err := s.contacts.CreateContact(ctx, contact); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, ownerID, id uuid.UUID, in dto.ContactDTO) (model.Contact, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Contact{}, customErrors.NewInvalidArgument(err.Error())
	}

	return s.contacts.UpdateContact(ctx, model.Contact{
		ID:               id,
		OwnerID:          ownerID,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PhoneNumbers:     in.PhoneNumbers,
		BirthdayDate:     in.BirthdayDate,
		OtherDescription: in.OtherDescription,
	})
}

func (s *contactService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.contacts.DeleteContact(ctx, ownerID, id)
}

func (s *contactService) Search(ctx context.Context, ownerID uuid.UUID, firstName, lastName, email string) ([]model.Contact, error) {
	return s.contacts.SearchContacts(ctx, ownerID, firstName, lastName, email)
}

func (s *contactService) UpcomingBirthdays(ctx context.Context, ownerID uuid.UUID, within int) ([]model.Contact, error) {
	if within <= 0 {
		within = 7
	}

	// materialize every calendar day of the window; this keeps month and
	// year rollover trivially correct
	today := s.now()
	days := make([]repo.MonthDay, 0, within+1)
	for i := 0; i <= within; i++ {
		d := today.AddDate(0, 0, i)
		days = append(days, repo.MonthDay{Month: int(d.Month()), Day: d.Day()})
	}

	return s.contacts.ContactsByBirthday(ctx, ownerID, days)
}
