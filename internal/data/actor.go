package data

import (
	"context"
	"fmt"

	"moviecatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type actorRepo struct {
	data *Data
	log  *log.Helper
}

// NewActorRepo creates a new actor repository
func NewActorRepo(data *Data, logger log.Logger) biz.ActorRepo {
	return &actorRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *actorRepo) ListActors(ctx context.Context) ([]*biz.Actor, error) {
	var rows []Actor
	if err := r.data.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query actors: %w", err)
	}

	actors := make([]*biz.Actor, 0, len(rows))
	for i := range rows {
		actors = append(actors, &biz.Actor{
			ID:          rows[i].ID,
			FullName:    rows[i].FullName,
			Nationality: rows[i].Nationality,
		})
	}
	return actors, nil
}

func (r *actorRepo) CreateActor(ctx context.Context, actor *biz.Actor) error {
	row := &Actor{FullName: actor.FullName, Nationality: actor.Nationality}
	if err := r.data.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert actor: %w", err)
	}
	actor.ID = row.ID
	return nil
}

// UpdateActor writes the name and nationality only.
func (r *actorRepo) UpdateActor(ctx context.Context, actor *biz.Actor) error {
	err := r.data.DB(ctx).Model(&Actor{}).
		Where("id = ?", actor.ID).
		Updates(map[string]interface{}{
			"full_name":   actor.FullName,
			"nationality": actor.Nationality,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update actor %d: %w", actor.ID, err)
	}
	return nil
}

func (r *actorRepo) DeleteActor(ctx context.Context, id int64) error {
	if err := r.data.DB(ctx).Delete(&Actor{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete actor %d: %w", id, err)
	}
	return nil
}
