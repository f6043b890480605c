package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// ActorUseCase handles actors and the movie/character queries that go
// through roles.
type ActorUseCase struct {
	tx        Transaction
	repo      ActorRepo
	movieRepo MovieRepo
	roleRepo  RoleRepo
	log       *log.Helper
}

// NewActorUseCase creates a new ActorUseCase instance
func NewActorUseCase(tx Transaction, repo ActorRepo, movieRepo MovieRepo, roleRepo RoleRepo, logger log.Logger) *ActorUseCase {
	return &ActorUseCase{
		tx:        tx,
		repo:      repo,
		movieRepo: movieRepo,
		roleRepo:  roleRepo,
		log:       log.NewHelper(logger),
	}
}

// Add inserts an actor whose full name is not taken yet (ignoring case)
func (uc *ActorUseCase) Add(ctx context.Context, actor *Actor) error {
	if actor == nil {
		return validationError("actor is required")
	}
	if actor.FullName == "" {
		return validationError("actor full name is required")
	}

	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		actors, err := uc.repo.ListActors(ctx)
		if err != nil {
			return fmt.Errorf("failed to list actors: %w", err)
		}
		if findFirst(actors, func(a *Actor) bool { return ActorNameKey.Unique(a.FullName, actor.FullName) }) != nil {
			return conflictError("an actor named %q already exists", actor.FullName)
		}
		if err := uc.repo.CreateActor(ctx, actor); err != nil {
			return fmt.Errorf("failed to create actor: %w", err)
		}
		return nil
	})
}

// Delete removes the actor with the given name
func (uc *ActorUseCase) Delete(ctx context.Context, name string) error {
	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		actor, err := uc.findByName(ctx, name)
		if err != nil {
			return err
		}
		if actor == nil {
			return notFoundError("actor %q not found", name)
		}
		if err := uc.repo.DeleteActor(ctx, actor.ID); err != nil {
			return fmt.Errorf("failed to delete actor: %w", err)
		}
		return nil
	})
}

// Update overwrites the full name and nationality of the actor currently
// named originalName. The id is kept.
func (uc *ActorUseCase) Update(ctx context.Context, originalName string, updated *Actor) error {
	if updated == nil {
		return validationError("actor is required")
	}
	if updated.FullName == "" {
		return validationError("actor full name is required")
	}

	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		actors, err := uc.repo.ListActors(ctx)
		if err != nil {
			return fmt.Errorf("failed to list actors: %w", err)
		}
		existing := findFirst(actors, func(a *Actor) bool { return ActorNameKey.Lookup(a.FullName, originalName) })
		if existing == nil {
			return notFoundError("actor %q not found", originalName)
		}
		clash := findFirst(actors, func(a *Actor) bool {
			return a.ID != existing.ID && ActorNameKey.Unique(a.FullName, updated.FullName)
		})
		if clash != nil {
			return conflictError("an actor named %q already exists", updated.FullName)
		}

		existing.FullName = updated.FullName
		existing.Nationality = updated.Nationality
		if err := uc.repo.UpdateActor(ctx, existing); err != nil {
			return fmt.Errorf("failed to update actor: %w", err)
		}
		return nil
	})
}

// GetAllActors returns every actor
func (uc *ActorUseCase) GetAllActors(ctx context.Context) ([]*Actor, error) {
	actors, err := uc.repo.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return actors, nil
}

// GetActorsByMovieTitle returns the distinct actors holding a role in the
// movie. An unknown title yields an empty list.
func (uc *ActorUseCase) GetActorsByMovieTitle(ctx context.Context, title string) ([]*Actor, error) {
	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	movie := findFirst(movies, func(m *Movie) bool { return MovieTitleKey.Lookup(m.Title, title) })
	if movie == nil {
		return []*Actor{}, nil
	}
	return uc.actorsOfRoles(ctx, func(r *Role) bool { return r.MovieID == movie.ID })
}

// GetActorsByCharacterName returns the distinct actors who played the
// character.
func (uc *ActorUseCase) GetActorsByCharacterName(ctx context.Context, name string) ([]*Actor, error) {
	return uc.actorsOfRoles(ctx, func(r *Role) bool { return CharacterNameKey.Lookup(r.CharacterName, name) })
}

// GetMoviesByActor returns the distinct movies the actor has a role in. An
// unknown actor yields an empty list.
func (uc *ActorUseCase) GetMoviesByActor(ctx context.Context, actorName string) ([]*Movie, error) {
	actor, err := uc.findByName(ctx, actorName)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return []*Movie{}, nil
	}

	roles, err := uc.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	ids := make(idSet)
	for _, r := range roles {
		if r.ActorID == actor.ID {
			ids.add(r.MovieID)
		}
	}

	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return filter(movies, func(m *Movie) bool { return ids.has(m.ID) }), nil
}

func (uc *ActorUseCase) actorsOfRoles(ctx context.Context, match func(*Role) bool) ([]*Actor, error) {
	roles, err := uc.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	ids := make(idSet)
	for _, r := range roles {
		if match(r) {
			ids.add(r.ActorID)
		}
	}
	if len(ids) == 0 {
		return []*Actor{}, nil
	}

	actors, err := uc.repo.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return filter(actors, func(a *Actor) bool { return ids.has(a.ID) }), nil
}

func (uc *ActorUseCase) findByName(ctx context.Context, name string) (*Actor, error) {
	actors, err := uc.repo.ListActors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return findFirst(actors, func(a *Actor) bool { return ActorNameKey.Lookup(a.FullName, name) }), nil
}
