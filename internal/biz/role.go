package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// RoleUseCase handles the movie/actor join records
type RoleUseCase struct {
	tx        Transaction
	repo      RoleRepo
	movieRepo MovieRepo
	actorRepo ActorRepo
	log       *log.Helper
}

// NewRoleUseCase creates a new RoleUseCase instance
func NewRoleUseCase(tx Transaction, repo RoleRepo, movieRepo MovieRepo, actorRepo ActorRepo, logger log.Logger) *RoleUseCase {
	return &RoleUseCase{
		tx:        tx,
		repo:      repo,
		movieRepo: movieRepo,
		actorRepo: actorRepo,
		log:       log.NewHelper(logger),
	}
}

// Add inserts a role. Character names are unique across the whole catalog,
// not per movie.
func (uc *RoleUseCase) Add(ctx context.Context, role *Role) error {
	if role == nil {
		return validationError("role is required")
	}
	if role.CharacterName == "" {
		return validationError("role character name is required")
	}

	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		roles, err := uc.repo.ListRoles(ctx)
		if err != nil {
			return fmt.Errorf("failed to list roles: %w", err)
		}
		if findFirst(roles, func(r *Role) bool { return CharacterNameKey.Unique(r.CharacterName, role.CharacterName) }) != nil {
			return conflictError("a role for character %q already exists", role.CharacterName)
		}
		if err := uc.repo.CreateRole(ctx, role); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return nil
	})
}

// DeleteByCharacterName removes the role played as name and reports whether
// one was found.
func (uc *RoleUseCase) DeleteByCharacterName(ctx context.Context, name string) (bool, error) {
	found := false
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		roles, err := uc.repo.ListRoles(ctx)
		if err != nil {
			return fmt.Errorf("failed to list roles: %w", err)
		}
		role := findFirst(roles, func(r *Role) bool { return CharacterNameKey.Lookup(r.CharacterName, name) })
		if role == nil {
			return nil
		}
		if err := uc.repo.DeleteRole(ctx, role.ID); err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// GetByCharacterName returns the roles played as name
func (uc *RoleUseCase) GetByCharacterName(ctx context.Context, name string) ([]*Role, error) {
	return uc.list(ctx, func(r *Role) bool { return CharacterNameKey.Lookup(r.CharacterName, name) })
}

// GetRolesByMovieTitle returns the roles of a movie, or an empty list when no
// movie has that title.
func (uc *RoleUseCase) GetRolesByMovieTitle(ctx context.Context, title string) ([]*Role, error) {
	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	movie := findFirst(movies, func(m *Movie) bool { return MovieTitleKey.Lookup(m.Title, title) })
	if movie == nil {
		return []*Role{}, nil
	}
	return uc.list(ctx, func(r *Role) bool { return r.MovieID == movie.ID })
}

// GetRolesByActorName returns the roles of an actor, or an empty list when
// no actor has that name.
func (uc *RoleUseCase) GetRolesByActorName(ctx context.Context, actorName string) ([]*Role, error) {
	actors, err := uc.actorRepo.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	actor := findFirst(actors, func(a *Actor) bool { return ActorNameKey.Lookup(a.FullName, actorName) })
	if actor == nil {
		return []*Role{}, nil
	}
	return uc.list(ctx, func(r *Role) bool { return r.ActorID == actor.ID })
}

func (uc *RoleUseCase) list(ctx context.Context, keep func(*Role) bool) ([]*Role, error) {
	roles, err := uc.repo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return filter(roles, keep), nil
}
