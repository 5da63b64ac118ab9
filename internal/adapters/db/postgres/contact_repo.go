package postgres

import (
	"context"
	"errors"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/repo"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (p *ContactRepo) CreateContact(ctx context.Context, contact model.Contact) (uuid.UUID, error) {
	res := p.db.WithContext(ctx).Create(&contact)
	if err := res.Error; err != nil {
		return uuid.Nil, customErrors.WrapInternal(err, "CreateContact")
	}
	return contact.ID, nil
}

func (p *ContactRepo) GetContact(ctx context.Context, ownerID, id uuid.UUID) (model.Contact, error) {
	var c model.Contact
	res := p.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&c)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Contact{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "GetContact")
	}
	return c, nil
}

func (p *ContactRepo) ListContacts(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]model.Contact, error) {
	var contacts []model.Contact
	res := p.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Offset(skip).Limit(limit).
		Find(&contacts)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListContacts")
	}
	return contacts, nil
}

func (p *ContactRepo) UpdateContact(ctx context.Context, contact model.Contact) (model.Contact, error) {
	res := p.db.WithContext(ctx).Model(&model.Contact{}).
		Where("owner_id = ? AND id = ?", contact.OwnerID, contact.ID).
		Updates(map[string]any{
			"first_name":        contact.FirstName,
			"last_name":         contact.LastName,
			"email":             contact.Email,
			"phone_numbers":     contact.PhoneNumbers,
			"birthday_date":     contact.BirthdayDate,
			"other_description": contact.OtherDescription,
		})
	if err := res.Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "UpdateContact")
	}
	if res.RowsAffected == 0 {
		return model.Contact{}, customErrors.ErrNotFound
	}
	return p.GetContact(ctx, contact.OwnerID, contact.ID)
}

func (p *ContactRepo) DeleteContact(ctx context.Context, ownerID, id uuid.UUID) error {
	res := p.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.Contact{}, "id = ?", id)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteContact")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}

func (p *ContactRepo) SearchContacts(ctx context.Context, ownerID uuid.UUID, firstName, lastName, email string) ([]model.Contact, error) {
	q := p.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	matched := false
	if firstName != "" {
		q = q.Where("first_name = ?", firstName)
		matched = true
	}
	if lastName != "" {
		q = q.Where("last_name = ?", lastName)
		matched = true
	}
	if email != "" {
		q = q.Where("email = ?", email)
		matched = true
	}
	if !matched {
		return nil, customErrors.NewInvalidArgument("no search criteria")
	}

	var contacts []model.Contact
	if err := q.Find(&contacts).Error; err != nil {
		return nil, customErrors.WrapInternal(err, "SearchContacts")
	}
	return contacts, nil
}

// ContactsByBirthday matches on the (month, day) of birthday_date so birth
// year and month rollover do not matter. The filter runs in-process: the
// per-owner contact set is small and month/day extraction is not portable
// across postgres and the sqlite used in tests.
func (p *ContactRepo) ContactsByBirthday(ctx context.Context, ownerID uuid.UUID, days []repo.MonthDay) ([]model.Contact, error) {
	var contacts []model.Contact
	res := p.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&contacts)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ContactsByBirthday")
	}

	wanted := make(map[repo.MonthDay]struct{}, len(days))
	for _, d := range days {
		wanted[d] = struct{}{}
	}

	var out []model.Contact
	for _, c := range contacts {
		md := repo.MonthDay{Month: int(c.BirthdayDate.Month()), Day: c.BirthdayDate.Day()}
		if _, ok := wanted[md]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
