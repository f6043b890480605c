package service

import (
	"context"

	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/biz"
)

func (s *CatalogService) AddGenre(ctx context.Context, req *v1.AddGenreRequest) (*v1.Genre, error) {
	genre := &biz.Genre{Name: req.Name}
	if err := s.genreUC.Add(ctx, genre); err != nil {
		return nil, err
	}
	return genreToProto(genre), nil
}

func (s *CatalogService) ListGenres(ctx context.Context, _ *v1.ListGenresRequest) (*v1.ListGenresReply, error) {
	genres, err := s.genreUC.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	reply := &v1.ListGenresReply{Items: make([]*v1.Genre, 0, len(genres))}
	for _, g := range genres {
		reply.Items = append(reply.Items, genreToProto(g))
	}
	return reply, nil
}

func (s *CatalogService) DeleteGenre(ctx context.Context, req *v1.GenreNameRequest) (*v1.Empty, error) {
	if err := s.genreUC.Delete(ctx, req.Name); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}
