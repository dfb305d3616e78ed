package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateGameImpl_Execute(t *testing.T) {
	gameID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	createdAt := time.Date(2024, 11, 10, 8, 0, 0, 0, time.UTC)
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	existing := domain.Game{ID: gameID, Name: "Hades", Rating: 88, CreatedAt: createdAt, UpdatedAt: createdAt}
	updated := domain.Game{ID: gameID, Name: "Hades II", Rating: 92, CreatedAt: createdAt, UpdatedAt: fixedTime}

	tests := map[string]struct {
		game            domain.Game
		setExpectations func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider)
		expectedGame    domain.Game
		expectedErr     error
	}{
		"success-preserves-created-at": {
			game: domain.Game{ID: gameID, Name: "Hades II", Rating: 92},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockGameRepository(t)
				outbox := domain.NewMockOutboxRepository(t)

				uow.EXPECT().Game().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().GetGame(mock.Anything, gameID).Return(existing, true, nil)
				repo.EXPECT().UpdateGame(mock.Anything, updated).Return(nil)
				outbox.EXPECT().CreateGameEvent(
					mock.Anything,
					domain.GameEvent{
						Type:      domain.EventType_GAME_UPDATED,
						GameID:    gameID,
						CreatedAt: fixedTime,
					},
				).Return(nil)
			},
			expectedGame: updated,
		},
		"not-found": {
			game: domain.Game{ID: gameID, Name: "Hades II", Rating: 92},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockGameRepository(t)
				uow.EXPECT().Game().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().GetGame(mock.Anything, gameID).Return(domain.Game{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("game 123e4567-e89b-12d3-a456-426614174000 not found"),
		},
		"validation-error-bad-rating": {
			game: domain.Game{ID: gameID, Name: "Hades II", Rating: 150},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("game rating must be between 0 and 100"),
		},
		"repository-error": {
			game: domain.Game{ID: gameID, Name: "Hades II", Rating: 92},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockGameRepository(t)
				uow.EXPECT().Game().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().GetGame(mock.Anything, gameID).Return(existing, true, nil)
				repo.EXPECT().UpdateGame(mock.Anything, updated).Return(errors.New("update failed"))
			},
			expectedErr: errors.New("update failed"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			tc.setExpectations(uow, timeProvider)

			updater := NewUpdateGameImpl(uow, timeProvider)
			game, err := updater.Execute(context.Background(), tc.game)

			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expectedGame, game)
		})
	}
}
