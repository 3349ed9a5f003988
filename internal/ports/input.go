package ports

import (
	"context"
	"plex-hue-webhook/internal/domain/model"
)

// WebhookPort is what the HTTP adapter calls with the raw form payload.
type WebhookPort interface {
	Handle(ctx context.Context, payload string) model.Result
}
