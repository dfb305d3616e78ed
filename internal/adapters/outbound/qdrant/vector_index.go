// Package qdrant implements the vector index port against a Qdrant server
// over its HTTP API. It is the alternative to the pgvector-backed index for
// deployments that run a dedicated vector database.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// VectorIndex implements domain.VectorIndex against a Qdrant HTTP endpoint.
type VectorIndex struct {
	baseURL    string
	collection string
	http       *http.Client
}

// NewVectorIndex creates a new VectorIndex for the given Qdrant host and collection.
func NewVectorIndex(baseURL, collection string, httpClient *http.Client) VectorIndex {
	return VectorIndex{
		baseURL:    baseURL,
		collection: collection,
		http:       httpClient,
	}
}

// EnsureCollection creates the collection if it does not exist, and verifies
// the vector size when it does.
func (vi VectorIndex) EnsureCollection(ctx context.Context, dims int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("collection", vi.collection),
		attribute.Int("dims", dims),
	))
	defer span.End()

	var info collectionInfoResponse
	status, err := vi.do(spanCtx, http.MethodGet, "/collections/"+vi.collection, nil, &info)
	if err != nil && status != http.StatusNotFound {
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	if status == http.StatusOK {
		existing := info.Result.Config.Params.Vectors.Size
		if existing != dims {
			err := fmt.Errorf("collection %s has %d dimensions, want %d", vi.collection, existing, dims)
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
		return nil
	}

	_, err = vi.do(spanCtx, http.MethodPut, "/collections/"+vi.collection, map[string]any{
		"vectors": map[string]any{
			"size":     dims,
			"distance": "Cosine",
		},
	}, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to create collection %s: %w", vi.collection, err)
	}
	return nil
}

// UpsertBatch inserts or replaces the given game vectors as points.
func (vi VectorIndex) UpsertBatch(ctx context.Context, batch []domain.GameVector) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("batch_size", len(batch))))
	defer span.End()

	points := make([]map[string]any, 0, len(batch))
	for _, gv := range batch {
		if gv.Vector.Dims() != domain.EmbeddingDims {
			err := fmt.Errorf("vector for game %s has %d dimensions, want %d",
				gv.Game.ID, gv.Vector.Dims(), domain.EmbeddingDims)
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
		points = append(points, map[string]any{
			"id":      gv.Game.ID.String(),
			"vector":  gv.Vector.Vector,
			"payload": newGamePayload(gv.Game),
		})
	}

	_, err := vi.do(spanCtx, http.MethodPut,
		"/collections/"+vi.collection+"/points?wait=true",
		map[string]any{"points": points}, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// Search returns up to limit games ordered by cosine similarity to the
// vector, restricted by the filter.
func (vi VectorIndex) Search(ctx context.Context, vector domain.EmbeddingVector, filter domain.SearchFilter, limit int) ([]domain.ScoredGame, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("limit", limit)))
	defer span.End()

	body := map[string]any{
		"vector":       vector.Vector,
		"limit":        limit,
		"with_payload": true,
	}
	if qf := buildFilter(filter); qf != nil {
		body["filter"] = qf
	}

	var out searchResponse
	_, err := vi.do(spanCtx, http.MethodPost,
		"/collections/"+vi.collection+"/points/search", body, &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	hits := make([]domain.ScoredGame, 0, len(out.Result))
	for _, point := range out.Result {
		game, err := point.Payload.game()
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		hits = append(hits, domain.ScoredGame{Game: game, Score: point.Score})
	}
	return hits, nil
}

// Delete removes the points for the given game IDs.
func (vi VectorIndex) Delete(ctx context.Context, ids []uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("ids", len(ids))))
	defer span.End()

	points := make([]string, len(ids))
	for i, id := range ids {
		points[i] = id.String()
	}

	_, err := vi.do(spanCtx, http.MethodPost,
		"/collections/"+vi.collection+"/points/delete?wait=true",
		map[string]any{"points": points}, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to delete points: %w", err)
	}
	return nil
}

// Count returns the number of indexed points.
func (vi VectorIndex) Count(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var out countResponse
	_, err := vi.do(spanCtx, http.MethodPost,
		"/collections/"+vi.collection+"/points/count",
		map[string]any{"exact": true}, &out)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return out.Result.Count, nil
}

// buildFilter translates the structured filter into a Qdrant filter clause.
// Category groups land in "should" so a game matches when at least one
// populated group matches; release bounds and rating are hard "must"
// conditions. Returns nil when the filter is empty.
func buildFilter(filter domain.SearchFilter) map[string]any {
	if filter.IsZero() {
		return nil
	}

	var should []map[string]any
	for _, group := range []struct {
		key    string
		values []string
	}{
		{"genres", filter.Genres},
		{"platforms", filter.Platforms},
		{"game_modes", filter.GameModes},
		{"player_perspectives", filter.PlayerPerspectives},
	} {
		if len(group.values) > 0 {
			should = append(should, map[string]any{
				"key":   group.key,
				"match": map[string]any{"any": group.values},
			})
		}
	}

	var must []map[string]any
	if filter.ReleasedAfter != nil || filter.ReleasedBefore != nil {
		yearRange := map[string]any{}
		if filter.ReleasedAfter != nil {
			yearRange["gte"] = *filter.ReleasedAfter
		}
		if filter.ReleasedBefore != nil {
			yearRange["lte"] = *filter.ReleasedBefore
		}
		must = append(must, map[string]any{"key": "release_year", "range": yearRange})
	}
	if filter.MinRating > 0 {
		must = append(must, map[string]any{
			"key":   "rating",
			"range": map[string]any{"gte": filter.MinRating},
		})
	}

	qf := map[string]any{}
	if len(should) > 0 {
		qf["should"] = should
		qf["min_should"] = map[string]any{"min_count": 1}
	}
	if len(must) > 0 {
		qf["must"] = must
	}
	return qf
}

func (vi VectorIndex) do(ctx context.Context, method, path string, body any, out any) (int, error) {
	endpoint, err := url.JoinPath(vi.baseURL, path)
	if err != nil {
		return 0, fmt.Errorf("invalid base URL: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := vi.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
