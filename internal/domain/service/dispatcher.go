package service

import (
	"context"
	"plex-hue-webhook/internal/domain/model"

	"github.com/rs/zerolog/log"
)

type Lights interface {
	ActivateLights(ctx context.Context) error
	DeactivateLights(ctx context.Context) error
}

type Gate interface {
	IsNight() bool
}

type handler func(ctx context.Context) (model.Result, error)

type Dispatcher struct {
	lights   Lights
	gate     Gate
	handlers map[model.EventKind]handler
}

func NewDispatcher(lights Lights, gate Gate) *Dispatcher {
	d := &Dispatcher{lights: lights, gate: gate}
	// Pause and resume have no behavior of their own yet.
	d.handlers = map[model.EventKind]handler{
		model.EventPlay:   d.mediaPlayed,
		model.EventResume: d.mediaPlayed,
		model.EventStop:   d.mediaStopped,
		model.EventPause:  d.mediaStopped,
	}
	return d
}

// Dispatch runs the handler for kind. A non-nil error means a downstream
// fault; the returned Result is only meaningful when err is nil.
func (d *Dispatcher) Dispatch(ctx context.Context, kind model.EventKind) (model.Result, error) {
	if h, ok := d.handlers[kind]; ok {
		return h(ctx)
	}
	log.Debug().Str("event", string(kind)).Msg("Pass hook")
	return model.ResultUnmanaged, nil
}

func (d *Dispatcher) mediaPlayed(ctx context.Context) (model.Result, error) {
	log.Debug().Msg("Start hook")
	if d.gate.IsNight() {
		if err := d.lights.ActivateLights(ctx); err != nil {
			return model.Result{}, err
		}
	}
	return model.ResultUnfinished, nil
}

func (d *Dispatcher) mediaStopped(ctx context.Context) (model.Result, error) {
	log.Debug().Msg("Stop hook")
	if d.gate.IsNight() {
		if err := d.lights.DeactivateLights(ctx); err != nil {
			return model.Result{}, err
		}
	}
	return model.ResultUnfinished, nil
}
