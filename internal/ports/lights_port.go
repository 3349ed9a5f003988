package ports

import (
	"context"

	"github.com/amimof/huego"
)

// LightPort sends a single state change to one light on the bridge.
type LightPort interface {
	SetLightState(ctx context.Context, id int, state huego.State) error
}
