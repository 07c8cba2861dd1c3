package xlog

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const HeaderCorrelationID = "X-Correlation-Id"

type correlationKey struct{}

func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// SetContextFromHTTP reuses the caller's correlation id or request id, generating one if neither is sent.
func SetContextFromHTTP(ctx context.Context, r *http.Request) context.Context {
	id := r.Header.Get(HeaderCorrelationID)
	if id == "" {
		id = r.Header.Get("X-Request-Id")
	}
	if id == "" {
		id = uuid.NewString()
	}
	return SetCorrelationID(ctx, id)
}

// NewJobContext tags a background execution with a fresh correlation id.
func NewJobContext(ctx context.Context) context.Context {
	return SetCorrelationID(ctx, uuid.NewString())
}

func withContext(ctx context.Context, fields []Field) []Field {
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, String("correlation_id", id))
	}
	return fields
}
