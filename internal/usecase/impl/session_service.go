// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/constants"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/errors"
	"identity/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store        repository.IdentityStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store        repository.IdentityStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:        params.Store,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the fields and creates the identity through the store.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.SanitizedIdentity, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if missing := missingFields(map[string]string{
		"fullName":    input.FullName,
		"email":       input.Email,
		"password":    input.Password,
		"sensitiveId": input.SensitiveID,
	}); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	// Advisory only; the storage layer's unique index decides concurrent races.
	_, err := srv.store.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrIdentityAlreadyExists.WrapMessage("register")
	case !errors.Is(err, domainerrors.ErrIdentityNotFound):
		return nil, errors.Wrap(err, "check email uniqueness")
	}

	identity, err := srv.store.Create(ctx, repository.NewIdentity{
		FullName:    strings.TrimSpace(input.FullName),
		Email:       input.Email,
		Password:    input.Password,
		SensitiveID: input.SensitiveID,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, email taken", slog.String("email", input.Email))
		}

		return nil, errors.Wrap(err, "create identity")
	}

	srv.log(ctx).Info("Identity registered",
		slog.String("identity_id", identity.ID.String()),
		slog.String("email", identity.Email),
	)
	srv.publish(ctx, constants.EventIdentityRegistered, identity.ID)

	return identity.Sanitize(), nil
}

// Login verifies the password, issues both tokens and persists the refresh token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.Session, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if missing := missingFields(map[string]string{
		"email":    input.Email,
		"password": input.Password,
	}); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	identity, err := srv.store.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			srv.log(ctx).Info("Login failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrIdentityNotFound.WithUserMessage(domainerrors.LoginFailedMessage)
		}

		return nil, errors.Wrap(err, "find identity by email")
	}

	matched, err := srv.hasher.Check(input.Password, identity.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, "verify password")
	}
	if !matched {
		srv.log(ctx).Info("Login failed, wrong password", slog.String("identity_id", identity.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(identity.ID)
	if err != nil {
		return nil, srv.tokenIssueFailed(ctx, identity.ID, err)
	}
	refreshToken, err := srv.tokenService.IssueRefreshToken(identity.ID)
	if err != nil {
		return nil, srv.tokenIssueFailed(ctx, identity.ID, err)
	}

	// Last login wins: the previous refresh token stops corroborating.
	if err := srv.store.UpdateRefreshToken(ctx, identity.ID, refreshToken); err != nil {
		return nil, srv.tokenIssueFailed(ctx, identity.ID, err)
	}

	srv.log(ctx).Info("Session started", slog.String("identity_id", identity.ID.String()))
	srv.publish(ctx, constants.EventSessionStarted, identity.ID)

	return &usecase.Session{
		Identity:     identity.Sanitize(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh re-establishes an access token. The presented refresh token must be
// validly signed and equal to the one stored on the identity.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domainerrors.ErrInvalidToken.WrapMessage("refresh token missing")
	}

	identityID, err := srv.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	identity, err := srv.store.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return "", domainerrors.ErrInvalidToken.WrapMessage("identity no longer exists")
		}

		return "", errors.Wrap(err, "find identity by id")
	}

	if !identity.HasActiveRefreshToken() ||
		subtle.ConstantTimeCompare([]byte(identity.RefreshToken), []byte(refreshToken)) != 1 {
		srv.log(ctx).Info("Refresh rejected, token not current", slog.String("identity_id", identityID.String()))

		return "", domainerrors.ErrInvalidToken.WrapMessage("refresh token is not current")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(identityID)
	if err != nil {
		return "", srv.tokenIssueFailed(ctx, identityID, err)
	}

	srv.log(ctx).Debug("Session refreshed", slog.String("identity_id", identityID.String()))
	srv.publish(ctx, constants.EventSessionRefreshed, identityID)

	return accessToken, nil
}

// Logout clears the stored refresh token of an authenticated identity.
func (srv *sessionService) Logout(ctx context.Context, identityID uuid.UUID) error {
	if err := srv.store.UpdateRefreshToken(ctx, identityID, ""); err != nil {
		return errors.Wrap(err, "clear refresh token")
	}

	srv.log(ctx).Info("Session ended", slog.String("identity_id", identityID.String()))
	srv.publish(ctx, constants.EventSessionEnded, identityID)

	return nil
}

// GetProfile decrypts the national ID only to mask it.
func (srv *sessionService) GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.SanitizedIdentity, error) {
	identity, err := srv.store.FindByID(ctx, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "find identity by id")
	}

	sensitiveID, err := srv.store.RevealSensitiveID(ctx, identity)
	if err != nil {
		srv.log(ctx).Error("Stored national ID could not be decrypted",
			slog.String("identity_id", identityID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "reveal sensitive id")
	}

	profile := identity.Sanitize()
	profile.SensitiveIDMasked = entity.MaskSensitiveID(sensitiveID)

	return profile, nil
}

func (srv *sessionService) tokenIssueFailed(ctx context.Context, identityID uuid.UUID, cause error) error {
	srv.log(ctx).Error("Failed to establish session",
		slog.String("identity_id", identityID.String()),
		slog.Any("error", cause),
	)

	return domainerrors.ErrTokenIssueFailed.WrapMessage(cause.Error())
}

// publish emits a lifecycle event. Failures are logged and never fail the request.
func (srv *sessionService) publish(ctx context.Context, eventType string, identityID uuid.UUID) {
	if srv.publisher == nil {
		return
	}

	eventID, err := uuid.NewV7()
	if err != nil {
		eventID = uuid.New()
	}

	event := &service.IdentityEvent{
		EventID:    eventID.String(),
		Type:       eventType,
		IdentityID: identityID.String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishIdentityEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish identity event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

// missingFields returns the names of blank fields in a stable order.
func missingFields(fields map[string]string) []string {
	order := []string{"fullName", "email", "password", "sensitiveId"}

	var missing []string
	for _, name := range order {
		value, ok := fields[name]
		if ok && strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	return missing
}
