package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// CreateGame defines the interface for the CreateGame use case.
type CreateGame interface {
	Execute(ctx context.Context, game domain.Game) (domain.Game, error)
}

// CreateGameImpl is the implementation of the CreateGame use case.
type CreateGameImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateGameImpl creates a new instance of CreateGameImpl.
func NewCreateGameImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateGameImpl {
	return CreateGameImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute adds a new game to the catalog and records the change for reindexing.
func (cg CreateGameImpl) Execute(ctx context.Context, game domain.Game) (domain.Game, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := cg.timeProvider.Now()
	game.ID = cg.createUUID()
	game.CreatedAt = now
	game.UpdatedAt = now

	if err := game.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Game{}, err
	}

	if err := cg.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Game().CreateGame(spanCtx, game); err != nil {
			return err
		}
		return uow.Outbox().CreateGameEvent(spanCtx, domain.GameEvent{
			Type:      domain.EventType_GAME_CREATED,
			GameID:    game.ID,
			CreatedAt: now,
		})
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Game{}, err
	}

	return game, nil
}

// InitCreateGame initializes the CreateGame use case and registers it in the
// dependency container.
type InitCreateGame struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateGameImpl use case in the dependency container.
func (icg InitCreateGame) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateGame](NewCreateGameImpl(icg.Uow, icg.TimeService))
	return ctx, nil
}
