package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	contactsvc "github.com/Miraines/ContactSphere/internal/app/contacts/service"
	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/repo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type contactRepoFake struct {
	contacts map[uuid.UUID]model.Contact
	lastDays []repo.MonthDay
}

func newContactRepoFake() *contactRepoFake {
	return &contactRepoFake{contacts: make(map[uuid.UUID]model.Contact)}
}

func (f *contactRepoFake) CreateContact(_ context.Context, c model.Contact) (uuid.UUID, error) {
	f.contacts[c.ID] = c
	return c.ID, nil
}

func (f *contactRepoFake) GetContact(_ context.Context, ownerID, id uuid.UUID) (model.Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return model.Contact{}, customErrors.ErrNotFound
	}
	return c, nil
}

func (f *contactRepoFake) ListContacts(_ context.Context, ownerID uuid.UUID, skip, limit int) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.contacts {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *contactRepoFake) UpdateContact(_ context.Context, c model.Contact) (model.Contact, error) {
	old, ok := f.contacts[c.ID]
	if !ok || old.OwnerID != c.OwnerID {
		return model.Contact{}, customErrors.ErrNotFound
	}
	f.contacts[c.ID] = c
	return c, nil
}

func (f *contactRepoFake) DeleteContact(_ context.Context, ownerID, id uuid.UUID) error {
	c, ok := f.contacts[id]
	if !ok || c.OwnerID != ownerID {
		return customErrors.ErrNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *contactRepoFake) SearchContacts(_ context.Context, ownerID uuid.UUID, firstName, lastName, email string) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.contacts {
		if c.OwnerID != ownerID {
			continue
		}
		if (firstName != "" && c.FirstName == firstName) ||
			(lastName != "" && c.LastName == lastName) ||
			(email != "" && c.Email == email) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *contactRepoFake) ContactsByBirthday(_ context.Context, ownerID uuid.UUID, days []repo.MonthDay) ([]model.Contact, error) {
	f.lastDays = days
	wanted := make(map[repo.MonthDay]struct{}, len(days))
	for _, d := range days {
		wanted[d] = struct{}{}
	}
	var out []model.Contact
	for _, c := range f.contacts {
		if c.OwnerID != ownerID {
			continue
		}
		md := repo.MonthDay{Month: int(c.BirthdayDate.Month()), Day: c.BirthdayDate.Day()}
		if _, ok := wanted[md]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestContactService_CreateValidates(t *testing.T) {
	f := newContactRepoFake()
	svc := contactsvc.New(f, validator.New())
	owner := uuid.New()

	_, err := svc.Create(context.Background(), owner, dto.ContactDTO{
		LastName: "NoFirstName",
	})
	require.True(t, customErrors.IsInvalidArgument(err))

	c, err := svc.Create(context.Background(), owner, dto.ContactDTO{
		FirstName:    "Ada",
		Email:        "ada@example.com",
		BirthdayDate: time.Date(1990, time.December, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, owner, c.OwnerID)
	require.NotEqual(t, uuid.Nil, c.ID)
}

func TestContactService_UpcomingBirthdays_MonthRollover(t *testing.T) {
	f := newContactRepoFake()
	owner := uuid.New()
	// today = Dec 28: window covers Dec 28 .. Jan 4
	svc := contactsvc.NewWithClock(f, validator.New(), fixedNow(2025, time.December, 28))

	mk := func(name string, m time.Month, d int) {
		_, err := svc.Create(context.Background(), owner, dto.ContactDTO{
			FirstName:    name,
			BirthdayDate: time.Date(1980, m, d, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	mk("DecInside", time.December, 30)
	mk("JanInside", time.January, 3)
	mk("JanOutside", time.January, 10)
	mk("DecOutside", time.December, 20)

	got, err := svc.UpcomingBirthdays(context.Background(), owner, 7)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, c := range got {
		names[c.FirstName] = true
	}
	require.True(t, names["DecInside"], "birthday two days out must match")
	require.True(t, names["JanInside"], "window must cross the month boundary")
	require.False(t, names["JanOutside"])
	require.False(t, names["DecOutside"])
}

func TestContactService_UpcomingBirthdays_YearRollover(t *testing.T) {
	f := newContactRepoFake()
	owner := uuid.New()
	svc := contactsvc.NewWithClock(f, validator.New(), fixedNow(2025, time.December, 31))

	_, err := svc.Create(context.Background(), owner, dto.ContactDTO{
		FirstName:    "NewYear",
		BirthdayDate: time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := svc.UpcomingBirthdays(context.Background(), owner, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "NewYear", got[0].FirstName)
}

func TestContactService_ListClampsLimit(t *testing.T) {
	f := newContactRepoFake()
	svc := contactsvc.New(f, validator.New())
	owner := uuid.New()

	_, err := svc.List(context.Background(), owner, -5, 100000)
	require.NoError(t, err)
}

func TestContactService_UpdateDelete(t *testing.T) {
	f := newContactRepoFake()
	svc := contactsvc.New(f, validator.New())
	owner := uuid.New()

	c, err := svc.Create(context.Background(), owner, dto.ContactDTO{
		FirstName:    "Grace",
		BirthdayDate: time.Date(1906, time.December, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner, c.ID, dto.ContactDTO{
		FirstName:    "Grace",
		LastName:     "Hopper",
		BirthdayDate: c.BirthdayDate,
	})
	require.NoError(t, err)
	require.Equal(t, "Hopper", updated.LastName)

	// wrong owner cannot touch it
	_, err = svc.Update(context.Background(), uuid.New(), c.ID, dto.ContactDTO{
		FirstName: "X", BirthdayDate: c.BirthdayDate,
	})
	require.True(t, customErrors.IsNotFound(err))

	require.NoError(t, svc.Delete(context.Background(), owner, c.ID))
	_, err = svc.Get(context.Background(), owner, c.ID)
	require.True(t, customErrors.IsNotFound(err))
}
