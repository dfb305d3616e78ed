package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
	"github.com/google/uuid"
)

// Reindexer is a runnable that consumes game catalog events from Pub/Sub
// and re-embeds the affected games in batches.
type Reindexer struct {
	Logger              *log.Logger         `resolve:""`
	Client              *pubsub.Client      `resolve:""`
	Interval            time.Duration       `config:"REINDEX_BATCH_INTERVAL" default:"3s"`
	BatchSize           int                 `config:"REINDEX_BATCH_SIZE" default:"20"`
	SubscriptionID      string              `config:"GAME_EVENTS_SUBSCRIPTION_ID"`
	IndexGames          usecases.IndexGames `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the reindexer worker.
func (s Reindexer) Run(ctx context.Context) error {
	s.Logger.Println("Reindexer: running...")

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call)
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("Reindexer: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

func (s Reindexer) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("Reindexer: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		defer func() { s.workerExecutionChan <- struct{}{} }()
	}

	seen := map[uuid.UUID]struct{}{}
	ids := make([]uuid.UUID, 0, len(batch))
	valid := make([]*pubsub.Message, 0, len(batch))
	for _, msg := range batch {
		id, err := uuid.Parse(msg.Attributes["entity_id"])
		if err != nil {
			s.Logger.Printf("Reindexer: dropping message with bad entity_id: %v", err)
			msg.Ack()
			continue
		}
		valid = append(valid, msg)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return
	}

	if err := s.IndexGames.ExecuteGames(ctx, ids); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.Logger.Printf("Reindexer: %v", err)
		}
		return
	}

	// Ack messages only after successful reindexing
	for _, msg := range valid {
		msg.Ack()
	}
}
