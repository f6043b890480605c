package server

import (
	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/conf"
	"moviecatalog/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, auth *conf.Auth, catalogSvc *service.CatalogService, logger log.Logger) *khttp.Server {
	var token string
	if auth != nil {
		token = auth.Token
	}
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			RequestIDMiddleware(),
			logging.Server(logger),
			AuthMiddleware(token, v1.WriteOperations),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, khttp.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, khttp.Address(c.Http.Addr))
		}
		if c.Http.Timeout != nil {
			opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
		}
	}
	srv := khttp.NewServer(opts...)
	v1.RegisterCatalogHTTPServer(srv, catalogSvc)
	return srv
}
