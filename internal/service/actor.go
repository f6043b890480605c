package service

import (
	"context"

	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/biz"
)

func (s *CatalogService) AddActor(ctx context.Context, req *v1.AddActorRequest) (*v1.Actor, error) {
	actor := &biz.Actor{FullName: req.FullName, Nationality: req.Nationality}
	if err := s.actorUC.Add(ctx, actor); err != nil {
		return nil, err
	}
	return actorToProto(actor), nil
}

func (s *CatalogService) ListActors(ctx context.Context, _ *v1.Empty) (*v1.ListActorsReply, error) {
	actors, err := s.actorUC.GetAllActors(ctx)
	if err != nil {
		return nil, err
	}
	return actorsToProto(actors), nil
}

func (s *CatalogService) UpdateActor(ctx context.Context, req *v1.UpdateActorRequest) (*v1.Empty, error) {
	updated := &biz.Actor{FullName: req.FullName, Nationality: req.Nationality}
	if err := s.actorUC.Update(ctx, req.Name, updated); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *CatalogService) DeleteActor(ctx context.Context, req *v1.ActorNameRequest) (*v1.Empty, error) {
	if err := s.actorUC.Delete(ctx, req.Name); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *CatalogService) ListMoviesByActor(ctx context.Context, req *v1.ActorNameRequest) (*v1.ListMoviesReply, error) {
	movies, err := s.actorUC.GetMoviesByActor(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return moviesToProto(movies), nil
}

func (s *CatalogService) ListRolesByActor(ctx context.Context, req *v1.ActorNameRequest) (*v1.ListRolesReply, error) {
	roles, err := s.roleUC.GetRolesByActorName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return rolesToProto(roles), nil
}

func (s *CatalogService) ListActorsByCharacter(ctx context.Context, req *v1.CharacterRequest) (*v1.ListActorsReply, error) {
	actors, err := s.actorUC.GetActorsByCharacterName(ctx, req.Character)
	if err != nil {
		return nil, err
	}
	return actorsToProto(actors), nil
}
