package service

import (
	"context"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]model.Contact, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (model.Contact, error)
	Create(ctx context.Context, ownerID uuid.UUID, in dto.ContactDTO) (model.Contact, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in dto.ContactDTO) (model.Contact, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Search(ctx context.Context, ownerID uuid.UUID, firstName, lastName, email string) ([]model.Contact, error)
	// UpcomingBirthdays returns contacts whose birthday falls within the
	// next `within` days, counting from today inclusive.
	UpcomingBirthdays(ctx context.Context, ownerID uuid.UUID, within int) ([]model.Contact, error)
}
