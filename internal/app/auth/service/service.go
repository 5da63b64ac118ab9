package service

import (
	"context"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
)

// Service is the authentication core: token issuance, session resolution and
// the email-confirmation flow.
type Service interface {
	Register(ctx context.Context, in dto.RegisterDTO) (model.User, error)
	Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error)
	// Refresh re-validates a refresh-scoped token, rotates the persisted
	// refresh token and issues a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	// Resolve is the hot path behind every protected route: bearer access
	// token in, principal out, or ErrUnauthorized.
	Resolve(ctx context.Context, accessToken string) (model.User, error)
	Logout(ctx context.Context, email string) error
	ConfirmEmail(ctx context.Context, token string) error
	ResendConfirmation(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email, url string) (model.User, error)
}
