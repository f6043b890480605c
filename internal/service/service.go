package service

import (
	"context"

	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/biz"

	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewCatalogService)

// CatalogService implements the catalog HTTP API on top of the use cases
type CatalogService struct {
	movieUC  *biz.MovieUseCase
	actorUC  *biz.ActorUseCase
	genreUC  *biz.GenreUseCase
	roleUC   *biz.RoleUseCase
	reviewUC *biz.ReviewUseCase
}

var _ v1.CatalogHTTPServer = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(movieUC *biz.MovieUseCase, actorUC *biz.ActorUseCase, genreUC *biz.GenreUseCase, roleUC *biz.RoleUseCase, reviewUC *biz.ReviewUseCase) *CatalogService {
	return &CatalogService{
		movieUC:  movieUC,
		actorUC:  actorUC,
		genreUC:  genreUC,
		roleUC:   roleUC,
		reviewUC: reviewUC,
	}
}

// HealthCheck implements health check
func (s *CatalogService) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckReply, error) {
	return &v1.HealthCheckReply{Status: "ok"}, nil
}

// Helper functions

func movieToProto(m *biz.Movie) *v1.Movie {
	return &v1.Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		GenreID:     m.GenreID,
	}
}

func moviesToProto(movies []*biz.Movie) *v1.ListMoviesReply {
	reply := &v1.ListMoviesReply{Items: make([]*v1.Movie, 0, len(movies))}
	for _, m := range movies {
		reply.Items = append(reply.Items, movieToProto(m))
	}
	return reply
}

func actorToProto(a *biz.Actor) *v1.Actor {
	return &v1.Actor{
		ID:          a.ID,
		FullName:    a.FullName,
		Nationality: a.Nationality,
	}
}

func actorsToProto(actors []*biz.Actor) *v1.ListActorsReply {
	reply := &v1.ListActorsReply{Items: make([]*v1.Actor, 0, len(actors))}
	for _, a := range actors {
		reply.Items = append(reply.Items, actorToProto(a))
	}
	return reply
}

func genreToProto(g *biz.Genre) *v1.Genre {
	return &v1.Genre{ID: g.ID, Name: g.Name}
}

func roleToProto(r *biz.Role) *v1.Role {
	return &v1.Role{
		ID:            r.ID,
		MovieID:       r.MovieID,
		ActorID:       r.ActorID,
		CharacterName: r.CharacterName,
	}
}

func rolesToProto(roles []*biz.Role) *v1.ListRolesReply {
	reply := &v1.ListRolesReply{Items: make([]*v1.Role, 0, len(roles))}
	for _, r := range roles {
		reply.Items = append(reply.Items, roleToProto(r))
	}
	return reply
}

func reviewToProto(r *biz.Review) *v1.Review {
	return &v1.Review{ID: r.ID, MovieID: r.MovieID, Rating: r.Rating}
}

func averagesToProto(averages []*biz.MovieAverage) *v1.ListAveragesReply {
	reply := &v1.ListAveragesReply{Items: make([]*v1.MovieAverage, 0, len(averages))}
	for _, a := range averages {
		reply.Items = append(reply.Items, &v1.MovieAverage{
			MovieID: a.MovieID,
			Title:   a.Title,
			Average: a.Average,
			Count:   a.Count,
		})
	}
	return reply
}
