package server

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// AuthMiddleware validates Bearer token for write operations.
// An empty token disables the check.
func AuthMiddleware(token string, operations []string) middleware.Middleware {
	protected := make(map[string]struct{}, len(operations))
	for _, op := range operations {
		protected[op] = struct{}{}
	}
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if token == "" {
				return handler(ctx, req)
			}
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return nil, errors.Unauthorized("UNAUTHORIZED", "missing transport info")
			}
			if _, ok := protected[tr.Operation()]; !ok {
				return handler(ctx, req)
			}

			authHeader := tr.RequestHeader().Get("Authorization")
			if authHeader == "" {
				return nil, errors.Unauthorized("UNAUTHORIZED", "missing Authorization header")
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, errors.Unauthorized("UNAUTHORIZED", "invalid Authorization header format")
			}
			if parts[1] != token {
				return nil, errors.Unauthorized("UNAUTHORIZED", "invalid token")
			}
			return handler(ctx, req)
		}
	}
}

// RequestIDMiddleware echoes the caller's X-Request-Id or issues a new one
// and stores it in the context for log correlation.
func RequestIDMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}
			id := tr.RequestHeader().Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			tr.ReplyHeader().Set(RequestIDHeader, id)
			return handler(context.WithValue(ctx, requestIDKey{}, id), req)
		}
	}
}

// RequestID returns a log valuer resolving the request id of the context.
func RequestID() log.Valuer {
	return func(ctx context.Context) interface{} {
		if ctx == nil {
			return ""
		}
		id, _ := ctx.Value(requestIDKey{}).(string)
		return id
	}
}
