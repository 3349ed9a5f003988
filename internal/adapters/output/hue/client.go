package hue

import (
	"context"
	"fmt"
	"plex-hue-webhook/internal/metrics"
	"plex-hue-webhook/internal/ports"
	"strings"

	"github.com/amimof/huego"
	"github.com/rs/zerolog/log"
)

var _ ports.LightPort = (*Client)(nil)

type Client struct {
	address string
	token   string
	metrics *metrics.Metrics
}

func NewClient(address, token string, m *metrics.Metrics) *Client {
	return &Client{
		address: strings.TrimSuffix(address, "/"),
		token:   token,
		metrics: m,
	}
}

func (c *Client) IsConfigured() bool {
	return c.address != "" && c.token != ""
}

// SetLightState opens a bridge handle and pushes one state to light id.
// huego has no persistent connection, so there is nothing to keep between
// calls.
func (c *Client) SetLightState(ctx context.Context, id int, state huego.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.IsConfigured() {
		return fmt.Errorf("Hue bridge not configured")
	}

	label := "off"
	if state.On {
		label = "on"
	}

	bridge := huego.New(c.address, c.token)
	resp, err := bridge.SetLightState(id, state)
	if err != nil {
		c.metrics.LightCommands.WithLabelValues(label, "error").Inc()
		return fmt.Errorf("set state on light %d: %w", id, err)
	}
	c.metrics.LightCommands.WithLabelValues(label, "ok").Inc()

	log.Debug().Int("light", id).Interface("success", resp.Success).Msg("Light state updated")
	return nil
}
