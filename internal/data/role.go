package data

import (
	"context"
	"fmt"

	"moviecatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type roleRepo struct {
	data *Data
	log  *log.Helper
}

// NewRoleRepo creates a new role repository
func NewRoleRepo(data *Data, logger log.Logger) biz.RoleRepo {
	return &roleRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *roleRepo) ListRoles(ctx context.Context) ([]*biz.Role, error) {
	var rows []Role
	if err := r.data.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}

	roles := make([]*biz.Role, 0, len(rows))
	for i := range rows {
		roles = append(roles, &biz.Role{
			ID:            rows[i].ID,
			MovieID:       rows[i].MovieID,
			ActorID:       rows[i].ActorID,
			CharacterName: rows[i].CharacterName,
		})
	}
	return roles, nil
}

func (r *roleRepo) CreateRole(ctx context.Context, role *biz.Role) error {
	row := &Role{
		MovieID:       role.MovieID,
		ActorID:       role.ActorID,
		CharacterName: role.CharacterName,
	}
	if err := r.data.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert role: %w", err)
	}
	role.ID = row.ID
	return nil
}

func (r *roleRepo) DeleteRole(ctx context.Context, id int64) error {
	if err := r.data.DB(ctx).Delete(&Role{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete role %d: %w", id, err)
	}
	return nil
}
