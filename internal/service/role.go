package service

import (
	"context"

	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/biz"
)

func (s *CatalogService) AddRole(ctx context.Context, req *v1.AddRoleRequest) (*v1.Role, error) {
	role := &biz.Role{
		MovieID:       req.MovieID,
		ActorID:       req.ActorID,
		CharacterName: req.CharacterName,
	}
	if err := s.roleUC.Add(ctx, role); err != nil {
		return nil, err
	}
	return roleToProto(role), nil
}

func (s *CatalogService) ListRolesByCharacter(ctx context.Context, req *v1.CharacterRequest) (*v1.ListRolesReply, error) {
	roles, err := s.roleUC.GetByCharacterName(ctx, req.Character)
	if err != nil {
		return nil, err
	}
	return rolesToProto(roles), nil
}

func (s *CatalogService) DeleteRole(ctx context.Context, req *v1.CharacterRequest) (*v1.DeleteReply, error) {
	deleted, err := s.roleUC.DeleteByCharacterName(ctx, req.Character)
	if err != nil {
		return nil, err
	}
	return &v1.DeleteReply{Deleted: deleted}, nil
}
