package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UpdateGame defines the interface for the UpdateGame use case.
type UpdateGame interface {
	Execute(ctx context.Context, game domain.Game) (domain.Game, error)
}

// UpdateGameImpl is the implementation of the UpdateGame use case.
type UpdateGameImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateGameImpl creates a new instance of UpdateGameImpl.
func NewUpdateGameImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateGameImpl {
	return UpdateGameImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute replaces a catalog game and records the change for reindexing.
func (ug UpdateGameImpl) Execute(ctx context.Context, game domain.Game) (domain.Game, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := ug.timeProvider.Now()
	game.UpdatedAt = now

	if err := game.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Game{}, err
	}

	if err := ug.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		existing, found, err := uow.Game().GetGame(spanCtx, game.ID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("game %s not found", game.ID))
		}
		game.CreatedAt = existing.CreatedAt

		if err := uow.Game().UpdateGame(spanCtx, game); err != nil {
			return err
		}
		return uow.Outbox().CreateGameEvent(spanCtx, domain.GameEvent{
			Type:      domain.EventType_GAME_UPDATED,
			GameID:    game.ID,
			CreatedAt: now,
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Game{}, err
	}

	return game, nil
}

// InitUpdateGame initializes the UpdateGame use case and registers it in the
// dependency container.
type InitUpdateGame struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpdateGameImpl use case in the dependency container.
func (iug InitUpdateGame) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateGame](NewUpdateGameImpl(iug.Uow, iug.TimeService))
	return ctx, nil
}
