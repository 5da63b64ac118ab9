package postgres

import (
	"context"
	"errors"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (p *UserRepo) CreateUser(ctx context.Context, user model.User) (uuid.UUID, error) {
	res := p.db.WithContext(ctx).Create(&user)
	if err := res.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, customErrors.ErrAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, customErrors.ErrAlreadyExists
		}
		return uuid.Nil, customErrors.WrapInternal(err, "CreateUser")
	}
	return user.ID, nil
}

func (p *UserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByEmail")
	}
	return u, nil
}

func (p *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByID")
	}
	return u, nil
}

func (p *UserRepo) UpdateRefreshToken(ctx context.Context, email string, token *string) error {
	res := p.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("refresh_token", token)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateRefreshToken")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}

func (p *UserRepo) ConfirmEmail(ctx context.Context, email string) error {
	res := p.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("confirmed", true)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "ConfirmEmail")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}

func (p *UserRepo) UpdateAvatar(ctx context.Context, email string, url string) (model.User, error) {
	res := p.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("avatar", url)
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "UpdateAvatar")
	}
	if res.RowsAffected == 0 {
		return model.User{}, customErrors.ErrNotFound
	}
	return p.GetUserByEmail(ctx, email)
}
