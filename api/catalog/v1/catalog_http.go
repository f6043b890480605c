package v1

import (
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "github.com/go-kratos/kratos/v2/encoding/json"
)

const (
	OperationCatalogHealthCheck           = "/catalog.v1.Catalog/HealthCheck"
	OperationCatalogAddMovie              = "/catalog.v1.Catalog/AddMovie"
	OperationCatalogDeleteMovie           = "/catalog.v1.Catalog/DeleteMovie"
	OperationCatalogListMovies            = "/catalog.v1.Catalog/ListMovies"
	OperationCatalogGetMovieGenre         = "/catalog.v1.Catalog/GetMovieGenre"
	OperationCatalogListActorsByMovie     = "/catalog.v1.Catalog/ListActorsByMovie"
	OperationCatalogListRolesByMovie      = "/catalog.v1.Catalog/ListRolesByMovie"
	OperationCatalogListMovieReviews      = "/catalog.v1.Catalog/ListMovieReviews"
	OperationCatalogAddActor              = "/catalog.v1.Catalog/AddActor"
	OperationCatalogListActors            = "/catalog.v1.Catalog/ListActors"
	OperationCatalogUpdateActor           = "/catalog.v1.Catalog/UpdateActor"
	OperationCatalogDeleteActor           = "/catalog.v1.Catalog/DeleteActor"
	OperationCatalogListMoviesByActor     = "/catalog.v1.Catalog/ListMoviesByActor"
	OperationCatalogListRolesByActor      = "/catalog.v1.Catalog/ListRolesByActor"
	OperationCatalogListActorsByCharacter = "/catalog.v1.Catalog/ListActorsByCharacter"
	OperationCatalogAddGenre              = "/catalog.v1.Catalog/AddGenre"
	OperationCatalogListGenres            = "/catalog.v1.Catalog/ListGenres"
	OperationCatalogDeleteGenre           = "/catalog.v1.Catalog/DeleteGenre"
	OperationCatalogAddRole               = "/catalog.v1.Catalog/AddRole"
	OperationCatalogListRolesByCharacter  = "/catalog.v1.Catalog/ListRolesByCharacter"
	OperationCatalogDeleteRole            = "/catalog.v1.Catalog/DeleteRole"
	OperationCatalogAddReview             = "/catalog.v1.Catalog/AddReview"
	OperationCatalogListReviews           = "/catalog.v1.Catalog/ListReviews"
	OperationCatalogUpdateReview          = "/catalog.v1.Catalog/UpdateReview"
	OperationCatalogDeleteReview          = "/catalog.v1.Catalog/DeleteReview"
	OperationCatalogListMoviesByRating    = "/catalog.v1.Catalog/ListMoviesByRating"
	OperationCatalogListAverageRatings    = "/catalog.v1.Catalog/ListAverageRatings"
	OperationCatalogTopRated              = "/catalog.v1.Catalog/TopRated"
)

// WriteOperations lists the operations that change the catalog.
var WriteOperations = []string{
	OperationCatalogAddMovie,
	OperationCatalogDeleteMovie,
	OperationCatalogAddActor,
	OperationCatalogUpdateActor,
	OperationCatalogDeleteActor,
	OperationCatalogAddGenre,
	OperationCatalogDeleteGenre,
	OperationCatalogAddRole,
	OperationCatalogDeleteRole,
	OperationCatalogAddReview,
	OperationCatalogUpdateReview,
	OperationCatalogDeleteReview,
}

type CatalogHTTPServer interface {
	HealthCheck(context.Context, *HealthCheckRequest) (*HealthCheckReply, error)

	AddMovie(context.Context, *AddMovieRequest) (*Movie, error)
	DeleteMovie(context.Context, *MovieTitleRequest) (*DeleteReply, error)
	ListMovies(context.Context, *ListMoviesRequest) (*ListMoviesReply, error)
	GetMovieGenre(context.Context, *MovieTitleRequest) (*Genre, error)
	ListActorsByMovie(context.Context, *MovieTitleRequest) (*ListActorsReply, error)
	ListRolesByMovie(context.Context, *MovieTitleRequest) (*ListRolesReply, error)
	ListMovieReviews(context.Context, *MovieTitleRequest) (*ListReviewsReply, error)

	AddActor(context.Context, *AddActorRequest) (*Actor, error)
	ListActors(context.Context, *Empty) (*ListActorsReply, error)
	UpdateActor(context.Context, *UpdateActorRequest) (*Empty, error)
	DeleteActor(context.Context, *ActorNameRequest) (*Empty, error)
	ListMoviesByActor(context.Context, *ActorNameRequest) (*ListMoviesReply, error)
	ListRolesByActor(context.Context, *ActorNameRequest) (*ListRolesReply, error)
	ListActorsByCharacter(context.Context, *CharacterRequest) (*ListActorsReply, error)

	AddGenre(context.Context, *AddGenreRequest) (*Genre, error)
	ListGenres(context.Context, *ListGenresRequest) (*ListGenresReply, error)
	DeleteGenre(context.Context, *GenreNameRequest) (*Empty, error)

	AddRole(context.Context, *AddRoleRequest) (*Role, error)
	ListRolesByCharacter(context.Context, *CharacterRequest) (*ListRolesReply, error)
	DeleteRole(context.Context, *CharacterRequest) (*DeleteReply, error)

	AddReview(context.Context, *AddReviewRequest) (*Review, error)
	ListReviews(context.Context, *ListReviewsRequest) (*ListTitledReviewsReply, error)
	UpdateReview(context.Context, *UpdateReviewRequest) (*Empty, error)
	DeleteReview(context.Context, *ReviewIDRequest) (*Empty, error)
	ListMoviesByRating(context.Context, *ListMoviesByRatingRequest) (*ListMoviesReply, error)
	ListAverageRatings(context.Context, *ListAverageRatingsRequest) (*ListAveragesReply, error)
	TopRated(context.Context, *TopRatedRequest) (*ListAveragesReply, error)
}

func RegisterCatalogHTTPServer(s *http.Server, srv CatalogHTTPServer) {
	r := s.Route("/")
	r.GET("/healthz", handler(OperationCatalogHealthCheck, nethttp.StatusOK, noBind[HealthCheckRequest], srv.HealthCheck))

	r.POST("/v1/movies", handler(OperationCatalogAddMovie, nethttp.StatusCreated, bindBody[AddMovieRequest], srv.AddMovie))
	r.GET("/v1/movies", handler(OperationCatalogListMovies, nethttp.StatusOK, bindListMovies, srv.ListMovies))
	r.DELETE("/v1/movies/{title}", handler(OperationCatalogDeleteMovie, nethttp.StatusOK, bindTitle, srv.DeleteMovie))
	r.GET("/v1/movies/{title}/genre", handler(OperationCatalogGetMovieGenre, nethttp.StatusOK, bindTitle, srv.GetMovieGenre))
	r.GET("/v1/movies/{title}/actors", handler(OperationCatalogListActorsByMovie, nethttp.StatusOK, bindTitle, srv.ListActorsByMovie))
	r.GET("/v1/movies/{title}/roles", handler(OperationCatalogListRolesByMovie, nethttp.StatusOK, bindTitle, srv.ListRolesByMovie))
	r.GET("/v1/movies/{title}/reviews", handler(OperationCatalogListMovieReviews, nethttp.StatusOK, bindTitle, srv.ListMovieReviews))

	r.POST("/v1/actors", handler(OperationCatalogAddActor, nethttp.StatusCreated, bindBody[AddActorRequest], srv.AddActor))
	r.GET("/v1/actors", handler(OperationCatalogListActors, nethttp.StatusOK, noBind[Empty], srv.ListActors))
	r.PUT("/v1/actors/{name}", handler(OperationCatalogUpdateActor, nethttp.StatusOK, bindUpdateActor, srv.UpdateActor))
	r.DELETE("/v1/actors/{name}", handler(OperationCatalogDeleteActor, nethttp.StatusOK, bindActorName, srv.DeleteActor))
	r.GET("/v1/actors/{name}/movies", handler(OperationCatalogListMoviesByActor, nethttp.StatusOK, bindActorName, srv.ListMoviesByActor))
	r.GET("/v1/actors/{name}/roles", handler(OperationCatalogListRolesByActor, nethttp.StatusOK, bindActorName, srv.ListRolesByActor))
	r.GET("/v1/characters/{character}/actors", handler(OperationCatalogListActorsByCharacter, nethttp.StatusOK, bindCharacterVar, srv.ListActorsByCharacter))

	r.POST("/v1/genres", handler(OperationCatalogAddGenre, nethttp.StatusCreated, bindBody[AddGenreRequest], srv.AddGenre))
	r.GET("/v1/genres", handler(OperationCatalogListGenres, nethttp.StatusOK, noBind[ListGenresRequest], srv.ListGenres))
	r.DELETE("/v1/genres/{name}", handler(OperationCatalogDeleteGenre, nethttp.StatusOK, bindGenreName, srv.DeleteGenre))

	r.POST("/v1/roles", handler(OperationCatalogAddRole, nethttp.StatusCreated, bindBody[AddRoleRequest], srv.AddRole))
	r.GET("/v1/roles", handler(OperationCatalogListRolesByCharacter, nethttp.StatusOK, bindCharacterQuery, srv.ListRolesByCharacter))
	r.DELETE("/v1/roles/{character}", handler(OperationCatalogDeleteRole, nethttp.StatusOK, bindCharacterVar, srv.DeleteRole))

	r.POST("/v1/reviews", handler(OperationCatalogAddReview, nethttp.StatusCreated, bindBody[AddReviewRequest], srv.AddReview))
	r.GET("/v1/reviews", handler(OperationCatalogListReviews, nethttp.StatusOK, bindListReviews, srv.ListReviews))
	r.PUT("/v1/reviews/{id}", handler(OperationCatalogUpdateReview, nethttp.StatusOK, bindUpdateReview, srv.UpdateReview))
	r.DELETE("/v1/reviews/{id}", handler(OperationCatalogDeleteReview, nethttp.StatusOK, bindReviewID, srv.DeleteReview))

	r.GET("/v1/ratings/movies", handler(OperationCatalogListMoviesByRating, nethttp.StatusOK, bindMoviesByRating, srv.ListMoviesByRating))
	r.GET("/v1/ratings/averages", handler(OperationCatalogListAverageRatings, nethttp.StatusOK, bindAverageRatings, srv.ListAverageRatings))
	r.GET("/v1/ratings/top", handler(OperationCatalogTopRated, nethttp.StatusOK, bindTopRated, srv.TopRated))
}

// handler runs the request through the server middleware chain matched on
// operation and encodes the reply with code. Binding happens inside the
// chain, so request ids, access logs and auth cover malformed requests too.
func handler[Req any, Reply any](operation string, code int, bind func(http.Context, *Req) error, call func(context.Context, *Req) (*Reply, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
			in := req.(*Req)
			if err := bind(ctx, in); err != nil {
				return nil, err
			}
			return call(c, in)
		})
		out, err := h(ctx, new(Req))
		if err != nil {
			return err
		}
		return ctx.Result(code, out)
	}
}

func noBind[Req any](http.Context, *Req) error { return nil }

func bindBody[Req any](ctx http.Context, in *Req) error {
	return ctx.Bind(in)
}

func bindTitle(ctx http.Context, in *MovieTitleRequest) error {
	in.Title = ctx.Vars().Get("title")
	return nil
}

func bindActorName(ctx http.Context, in *ActorNameRequest) error {
	in.Name = ctx.Vars().Get("name")
	return nil
}

func bindGenreName(ctx http.Context, in *GenreNameRequest) error {
	in.Name = ctx.Vars().Get("name")
	return nil
}

func bindCharacterVar(ctx http.Context, in *CharacterRequest) error {
	in.Character = ctx.Vars().Get("character")
	return nil
}

func bindCharacterQuery(ctx http.Context, in *CharacterRequest) error {
	in.Character = ctx.Query().Get("character")
	return nil
}

func bindUpdateActor(ctx http.Context, in *UpdateActorRequest) error {
	if err := ctx.Bind(in); err != nil {
		return err
	}
	in.Name = ctx.Vars().Get("name")
	return nil
}

func bindListMovies(ctx http.Context, in *ListMoviesRequest) error {
	q := ctx.Query()
	if q.Has("title") {
		title := q.Get("title")
		in.Title = &title
	}
	if q.Has("year") {
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			return invalidArgument("year", q.Get("year"))
		}
		in.Year = &year
	}
	if q.Has("genre_id") {
		id, err := strconv.ParseInt(q.Get("genre_id"), 10, 64)
		if err != nil {
			return invalidArgument("genre_id", q.Get("genre_id"))
		}
		in.GenreID = &id
	}
	return nil
}

func bindListReviews(ctx http.Context, in *ListReviewsRequest) error {
	in.Order = ctx.Query().Get("order")
	return nil
}

func bindReviewID(ctx http.Context, in *ReviewIDRequest) error {
	id, err := strconv.ParseInt(ctx.Vars().Get("id"), 10, 64)
	if err != nil {
		return invalidArgument("id", ctx.Vars().Get("id"))
	}
	in.ID = id
	return nil
}

func bindUpdateReview(ctx http.Context, in *UpdateReviewRequest) error {
	if err := ctx.Bind(in); err != nil {
		return err
	}
	id, err := strconv.ParseInt(ctx.Vars().Get("id"), 10, 64)
	if err != nil {
		return invalidArgument("id", ctx.Vars().Get("id"))
	}
	in.ID = id
	return nil
}

func bindMoviesByRating(ctx http.Context, in *ListMoviesByRatingRequest) error {
	v, err := strconv.ParseFloat(ctx.Query().Get("rating"), 64)
	if err != nil {
		return invalidArgument("rating", ctx.Query().Get("rating"))
	}
	in.Rating = v
	return nil
}

func bindAverageRatings(ctx http.Context, in *ListAverageRatingsRequest) error {
	raw := ctx.Query().Get("min")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return invalidArgument("min", raw)
	}
	in.Min = v
	return nil
}

func bindTopRated(ctx http.Context, in *TopRatedRequest) error {
	raw := ctx.Query().Get("limit")
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return invalidArgument("limit", raw)
	}
	in.Limit = v
	return nil
}

func invalidArgument(name, value string) error {
	return errors.BadRequest("INVALID_ARGUMENT", "invalid "+name+": "+strconv.Quote(value))
}
