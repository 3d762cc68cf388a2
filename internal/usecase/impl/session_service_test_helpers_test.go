package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"identity/internal/domain/entity"
	mockRepo "identity/internal/mocks/repository"
	mockService "identity/internal/mocks/service"
	"identity/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type sessionServiceMocks struct {
	store     *mockRepo.MockIdentityStore
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenService
	publisher *mockService.MockEventPublisher
}

func newTestSessionService(t *testing.T) (usecase.SessionUsecase, *sessionServiceMocks) {
	t.Helper()

	mocks := &sessionServiceMocks{
		store:     mockRepo.NewMockIdentityStore(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		tokens:    mockService.NewMockTokenService(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	svc := NewSessionService(SessionServiceParams{
		Store:        mocks.store,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokens,
		Publisher:    mocks.publisher,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func storedJane() *entity.Identity {
	return &entity.Identity{
		ID:           uuid.Must(uuid.NewV7()),
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		PasswordHash: "$2a$10$stored",
		SensitiveID:  "00112233445566778899aabbccddeeff:ffeeddccbbaa99887766554433221100",
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}
