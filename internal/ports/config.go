package ports

import (
	"context"
	"plex-hue-webhook/internal/domain/model"
)

type ConfigRepository interface {
	Get(ctx context.Context) (*model.Config, error)
}
