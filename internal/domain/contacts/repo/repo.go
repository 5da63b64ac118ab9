package repo

import (
	"context"

	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/google/uuid"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user model.User) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
	// UpdateRefreshToken persists the last-issued refresh token; nil clears it.
	UpdateRefreshToken(ctx context.Context, email string, token *string) error
	ConfirmEmail(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email string, url string) (model.User, error)
}

type ContactRepo interface {
	CreateContact(ctx context.Context, contact model.Contact) (uuid.UUID, error)
	GetContact(ctx context.Context, ownerID, id uuid.UUID) (model.Contact, error)
	ListContacts(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]model.Contact, error)
	UpdateContact(ctx context.Context, contact model.Contact) (model.Contact, error)
	DeleteContact(ctx context.Context, ownerID, id uuid.UUID) error
	SearchContacts(ctx context.Context, ownerID uuid.UUID, firstName, lastName, email string) ([]model.Contact, error)
	// ContactsByBirthday returns contacts whose (month, day) birthday falls
	// on one of the given days, regardless of birth year.
	ContactsByBirthday(ctx context.Context, ownerID uuid.UUID, days []MonthDay) ([]model.Contact, error)
}

// MonthDay is a calendar day without a year, used for birthday windows.
type MonthDay struct {
	Month int
	Day   int
}

// IdentityCache is the write-through snapshot store keyed by email.
type IdentityCache interface {
	Get(ctx context.Context, email string) (model.User, error)
	Put(ctx context.Context, email string, user model.User) error
}
