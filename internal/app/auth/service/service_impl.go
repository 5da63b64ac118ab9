package service

import (
	"context"
	"errors"

	"github.com/Miraines/ContactSphere/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactSphere/internal/app/auth/password"
	"github.com/Miraines/ContactSphere/internal/app/auth/token"
	"github.com/Miraines/ContactSphere/internal/app/avatar"
	"github.com/Miraines/ContactSphere/internal/app/email"
	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/repo"
	"github.com/Miraines/ContactSphere/internal/infra/config"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authService struct {
	userRepo repo.UserRepo
	cache    repo.IdentityCache
	codec    token.Codec
	mail     email.Sender
	cfg      *config.Config
	v        *validator.Validate
	log      *zap.Logger
}

func New(
	ur repo.UserRepo,
	cache repo.IdentityCache,
	codec token.Codec,
	mail email.Sender,
	cfg *config.Config,
	v *validator.Validate,
	log *zap.Logger,
) Service {
	return &authService{
		userRepo: ur, cache: cache, codec: codec, mail: mail,
		cfg: cfg, v: v, log: log,
	}
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	if _, err := a.userRepo.GetUserByEmail(ctx, in.Email); err == nil {
		return model.User{}, customErrors.ErrAlreadyExists
	} else if !errors.Is(err, customErrors.ErrNotFound) {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       avatar.GravatarURL(in.Email),
	}
	if _, err = a.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	a.sendConfirmation(user.Email, user.Username)

	return user, nil
}

// sendConfirmation is best-effort: registration must succeed even with the
// mail provider down.
func (a *authService) sendConfirmation(to, username string) {
	verification, err := a.codec.Issue(to, token.ScopeNone, 0, nil)
	if err != nil {
		a.log.Error("issue verification token", zap.Error(err))
		return
	}
	if err := a.mail.SendConfirmation(to, username, verification); err != nil {
		a.log.Error("send confirmation mail", zap.Error(err))
	}
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Login")
	}

	if !password.Verify(in.Password, user.PasswordHash) {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}
	if !user.Confirmed {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	return a.issuePair(ctx, user.Email)
}

func (a *authService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := a.codec.Decode(refreshToken, token.ScopeRefresh)
	if err != nil {
		return model.TokenPair{}, customErrors.ErrUnauthorized
	}

	user, err := a.userRepo.GetUserByEmail(ctx, claims.Subject)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, customErrors.ErrUnauthorized
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Refresh")
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		// a stale or replayed refresh token invalidates the session
		if err := a.userRepo.UpdateRefreshToken(ctx, user.Email, nil); err != nil {
			a.log.Error("clear refresh token", zap.Error(err))
		}
		return model.TokenPair{}, customErrors.ErrUnauthorized
	}

	return a.issuePair(ctx, user.Email)
}

func (a *authService) issuePair(ctx context.Context, subject string) (model.TokenPair, error) {
	access, err := a.codec.Issue(subject, token.ScopeAccess, 0, nil)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issue access token")
	}
	refresh, err := a.codec.Issue(subject, token.ScopeRefresh, 0, nil)
	if err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "issue refresh token")
	}

	if err := a.userRepo.UpdateRefreshToken(ctx, subject, &refresh); err != nil {
		return model.TokenPair{}, customErrors.WrapInternal(err, "persist refresh token")
	}

	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    a.cfg.AccessTokenTTL,
		RefreshTTL:   a.cfg.RefreshTokenTTL,
	}, nil
}

// Resolve decodes the bearer token, consults the identity cache and falls
// back to the user store with a write-through. Every token or lookup failure
// collapses into a single ErrUnauthorized so a caller cannot probe which
// check failed; cache connectivity failures surface instead of being masked.
func (a *authService) Resolve(ctx context.Context, accessToken string) (model.User, error) {
	claims, err := a.codec.Decode(accessToken, token.ScopeAccess)
	if err != nil {
		return model.User{}, customErrors.ErrUnauthorized
	}

	cached, err := a.cache.Get(ctx, claims.Subject)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, customErrors.ErrCacheMiss):
		return model.User{}, err
	}

	user, err := a.userRepo.GetUserByEmail(ctx, claims.Subject)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.ErrUnauthorized
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "Resolve")
	}

	if err := a.cache.Put(ctx, user.Email, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context, email string) error {
	if err := a.userRepo.UpdateRefreshToken(ctx, email, nil); err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return customErrors.ErrUnauthorized
		}
		return customErrors.WrapInternal(err, "Logout")
	}
	return nil
}

func (a *authService) ConfirmEmail(ctx context.Context, raw string) error {
	claims, err := a.codec.Decode(raw, token.ScopeNone)
	if err != nil {
		return customErrors.ErrUnprocessableToken
	}

	// the token does not self-invalidate; redeeming it twice is fine
	if err := a.userRepo.ConfirmEmail(ctx, claims.Subject); err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return customErrors.ErrUnprocessableToken
		}
		return customErrors.WrapInternal(err, "ConfirmEmail")
	}
	return nil
}

func (a *authService) ResendConfirmation(ctx context.Context, email string) error {
	user, err := a.userRepo.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// reply identically for unknown addresses
		return nil
	case err != nil:
		return customErrors.WrapInternal(err, "ResendConfirmation")
	}

	if user.Confirmed {
		return nil
	}
	a.sendConfirmation(user.Email, user.Username)
	return nil
}

func (a *authService) UpdateAvatar(ctx context.Context, email, url string) (model.User, error) {
	user, err := a.userRepo.UpdateAvatar(ctx, email, url)
	if err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return model.User{}, customErrors.ErrUnauthorized
		}
		return model.User{}, customErrors.WrapInternal(err, "UpdateAvatar")
	}

	// refresh the snapshot so the new avatar shows up before the old
	// entry would have expired
	if err := a.cache.Put(ctx, user.Email, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
