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

func TestCreateGameImpl_Execute(t *testing.T) {
	fixedUUID := func() uuid.UUID {
		return uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	}
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	created := domain.Game{
		ID:        fixedUUID(),
		Name:      "Hollow Knight",
		Genres:    []string{"Platform"},
		Rating:    90,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}

	tests := map[string]struct {
		game            domain.Game
		setExpectations func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider)
		expectedGame    domain.Game
		expectedErr     error
	}{
		"success": {
			game: domain.Game{Name: "Hollow Knight", Genres: []string{"Platform"}, Rating: 90},
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

				repo.EXPECT().CreateGame(mock.Anything, created).Return(nil)
				outbox.EXPECT().CreateGameEvent(
					mock.Anything,
					domain.GameEvent{
						Type:      domain.EventType_GAME_CREATED,
						GameID:    fixedUUID(),
						CreatedAt: fixedTime,
					},
				).Return(nil)
			},
			expectedGame: created,
		},
		"validation-error-empty-name": {
			game: domain.Game{Rating: 90},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("game name cannot be empty"),
		},
		"repository-error": {
			game: domain.Game{Name: "Hollow Knight", Genres: []string{"Platform"}, Rating: 90},
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain.NewMockGameRepository(t)
				uow.EXPECT().Game().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().CreateGame(mock.Anything, created).Return(errors.New("insert failed"))
			},
			expectedErr: errors.New("insert failed"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			tc.setExpectations(uow, timeProvider)

			creator := NewCreateGameImpl(uow, timeProvider)
			creator.createUUID = fixedUUID

			game, err := creator.Execute(context.Background(), tc.game)

			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expectedGame, game)
		})
	}
}
