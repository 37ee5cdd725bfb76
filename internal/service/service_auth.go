package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/internal/utils"
	"github.com/MKhiriev/go-bangs/models"
)

// authService identifies the user behind a request. Tokens are issued by the
// sign-in flow, never here.
type authService struct {
	// userRepository loads the account named by the token subject.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the App config group.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate parses tokenString and loads the user it names.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, token.UserID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.Authenticate").
			Int64("owner_id", token.UserID).
			Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	return &user, nil
}
