package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// DeleteGame defines the interface for the DeleteGame use case.
type DeleteGame interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteGameImpl is the implementation of the DeleteGame use case.
type DeleteGameImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteGameImpl creates a new instance of DeleteGameImpl.
func NewDeleteGameImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) DeleteGameImpl {
	return DeleteGameImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute removes a game from the catalog and records the deletion so the
// vector index drops it too.
func (dg DeleteGameImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := dg.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		_, found, err := uow.Game().GetGame(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("game %s not found", id))
		}

		if err := uow.Game().DeleteGame(spanCtx, id); err != nil {
			return err
		}
		return uow.Outbox().CreateGameEvent(spanCtx, domain.GameEvent{
			Type:      domain.EventType_GAME_DELETED,
			GameID:    id,
			CreatedAt: dg.timeProvider.Now(),
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeleteGame initializes the DeleteGame use case and registers it in the
// dependency container.
type InitDeleteGame struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the DeleteGameImpl use case in the dependency container.
func (idg InitDeleteGame) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteGame](NewDeleteGameImpl(idg.Uow, idg.TimeService))
	return ctx, nil
}
