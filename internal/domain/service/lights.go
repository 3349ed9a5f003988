package service

import (
	"context"
	"fmt"
	"plex-hue-webhook/internal/ports"

	"github.com/amimof/huego"
	"github.com/rs/zerolog/log"
)

// Brightness restored when playback stops, on the bridge's 1-254 scale.
const ambientBrightness uint8 = 80

type LightController struct {
	port   ports.LightPort
	lights []int
}

func NewLightController(port ports.LightPort, lights []int) *LightController {
	return &LightController{port: port, lights: lights}
}

// ActivateLights darkens the room: every configured light is switched off.
func (c *LightController) ActivateLights(ctx context.Context) error {
	return c.apply(ctx, huego.State{On: false})
}

// DeactivateLights switches every configured light back on at ambient
// brightness.
func (c *LightController) DeactivateLights(ctx context.Context) error {
	return c.apply(ctx, huego.State{On: true, Bri: ambientBrightness})
}

func (c *LightController) apply(ctx context.Context, state huego.State) error {
	log.Debug().Ints("lights", c.lights).Bool("on", state.On).Msg("Launching Hue action")
	for _, id := range c.lights {
		if err := c.port.SetLightState(ctx, id, state); err != nil {
			return fmt.Errorf("light %d: %w", id, err)
		}
	}
	return nil
}
