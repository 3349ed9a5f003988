package service

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Lights are only touched between 20:00 and 05:59 local time.
const (
	nightStartHour = 20
	nightEndHour   = 6
)

type NightGate struct {
	now func() time.Time
}

// NewNightGate returns a gate reading the given clock. A nil clock means
// time.Now.
func NewNightGate(now func() time.Time) *NightGate {
	if now == nil {
		now = time.Now
	}
	return &NightGate{now: now}
}

func (g *NightGate) IsNight() bool {
	hour := g.now().Local().Hour()
	log.Debug().Int("hour", hour).Msg("Local hour")
	if hour >= nightStartHour || hour < nightEndHour {
		return true
	}
	log.Info().Int("hour", hour).Msg("Not the time to play with the lights")
	return false
}
