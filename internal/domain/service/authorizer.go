package service

import (
	"plex-hue-webhook/internal/domain/model"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Some players report local=false when streaming over loopback.
const loopbackAddress = "127.0.0.1"

type Authorizer struct {
	whitelist map[string]struct{}
}

func NewAuthorizer(whitelist []string) *Authorizer {
	return &Authorizer{
		whitelist: lo.SliceToMap(whitelist, func(uuid string) (string, struct{}) {
			return uuid, struct{}{}
		}),
	}
}

// IsAuthorized reports whether the player is whitelisted and playing locally.
func (a *Authorizer) IsAuthorized(player model.Player) bool {
	log.Debug().Str("uuid", player.UUID).Bool("local", player.Local).
		Str("public_address", player.PublicAddress).Msg("Checking player")

	if _, ok := a.whitelist[player.UUID]; !ok {
		log.Info().Str("uuid", player.UUID).Msg("Player is not whitelisted")
		return false
	}

	if !player.Local && player.PublicAddress != loopbackAddress {
		log.Info().Bool("local", player.Local).Str("public_address", player.PublicAddress).
			Msg("Remote playback, doing nothing")
		return false
	}

	return true
}
