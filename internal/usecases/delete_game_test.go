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

func TestDeleteGameImpl_Execute(t *testing.T) {
	gameID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := domain.Game{ID: gameID, Name: "Hades", Rating: 88}

	tests := map[string]struct {
		setExpectations func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider)
		expectedErr     error
	}{
		"success": {
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
				repo.EXPECT().DeleteGame(mock.Anything, gameID).Return(nil)
				outbox.EXPECT().CreateGameEvent(
					mock.Anything,
					domain.GameEvent{
						Type:      domain.EventType_GAME_DELETED,
						GameID:    gameID,
						CreatedAt: fixedTime,
					},
				).Return(nil)
			},
		},
		"not-found": {
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
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
		"repository-error": {
			setExpectations: func(uow *domain.MockUnitOfWork, timeProvider *domain.MockCurrentTimeProvider) {
				repo := domain.NewMockGameRepository(t)
				uow.EXPECT().Game().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().GetGame(mock.Anything, gameID).Return(existing, true, nil)
				repo.EXPECT().DeleteGame(mock.Anything, gameID).Return(errors.New("delete failed"))
			},
			expectedErr: errors.New("delete failed"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			tc.setExpectations(uow, timeProvider)

			deleter := NewDeleteGameImpl(uow, timeProvider)
			err := deleter.Execute(context.Background(), gameID)

			assert.Equal(t, tc.expectedErr, err)
		})
	}
}
