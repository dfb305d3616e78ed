package http

import (
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
)

func toError(err error) errorResp {
	switch e := err.(type) {
	case *domain.ValidationErr:
		return newErrorResp(errorCode_BadRequest, e.Error())
	case *domain.NotFoundErr:
		return newErrorResp(errorCode_NotFound, e.Error())
	default:
		return newErrorResp(errorCode_Internal, "internal server error")
	}
}

func toGame(g domain.Game) gameResp {
	resp := gameResp{
		ID:                 g.ID,
		Name:               g.Name,
		Summary:            g.Summary,
		Genres:             g.Genres,
		GameModes:          g.GameModes,
		PlayerPerspectives: g.PlayerPerspectives,
		Franchise:          g.Franchise,
		GameType:           string(g.GameType),
		ReleaseDate:        g.ReleaseDate,
		Rating:             g.Rating,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
	for _, p := range g.Platforms {
		resp.Platforms = append(resp.Platforms, platformResp{Name: p.Name, Aliases: p.Aliases})
	}
	for _, c := range g.Companies {
		resp.Companies = append(resp.Companies, companyResp{Name: c.Name, Developer: c.Developer, Publisher: c.Publisher})
	}
	return resp
}

func fromGameReq(req gameReq) domain.Game {
	game := domain.Game{
		Name:               req.Name,
		Summary:            req.Summary,
		Genres:             req.Genres,
		GameModes:          req.GameModes,
		PlayerPerspectives: req.PlayerPerspectives,
		Franchise:          req.Franchise,
		GameType:           domain.GameType(req.GameType),
		ReleaseDate:        req.ReleaseDate,
		Rating:             req.Rating,
	}
	for _, p := range req.Platforms {
		game.Platforms = append(game.Platforms, domain.Platform{Name: p.Name, Aliases: p.Aliases})
	}
	for _, c := range req.Companies {
		game.Companies = append(game.Companies, domain.Company{Name: c.Name, Developer: c.Developer, Publisher: c.Publisher})
	}
	return game
}

func toRecommendationResp(r domain.RecommendationResponse) recommendationResp {
	resp := recommendationResp{
		ConversationID:    r.ConversationID,
		Recommendations:   []recommendationItem{},
		Message:           r.Message,
		RequiresFollowUp:  r.RequiresFollowUp,
		FollowUpQuestion:  r.FollowUpQuestion,
		OverallConfidence: r.OverallConfidence,
	}
	for _, rec := range r.Recommendations {
		resp.Recommendations = append(resp.Recommendations, recommendationItem{
			Game:       toGame(rec.Game),
			Confidence: rec.Confidence,
			Reasons:    rec.Reasons,
		})
	}
	return resp
}

func toSearchResp(hits []domain.ScoredGame) searchResp {
	resp := searchResp{Items: []scoredGameResp{}}
	for _, hit := range hits {
		resp.Items = append(resp.Items, scoredGameResp{Game: toGame(hit.Game), Score: hit.Score})
	}
	return resp
}

func toEngineStatsResp(stats usecases.EngineStats) engineStatsResp {
	return engineStatsResp{
		CatalogGames:   stats.CatalogGames,
		IndexedVectors: stats.IndexedGames,
		CacheEntries:   stats.Cache.Entries,
		CacheHits:      stats.Cache.Hits,
		CacheMisses:    stats.Cache.Misses,
		CacheEvictions: stats.Cache.Evictions,
	}
}
