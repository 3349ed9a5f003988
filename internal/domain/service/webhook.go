package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"plex-hue-webhook/internal/domain/model"

	"github.com/rs/zerolog/log"
)

var ErrNoPayload = errors.New("no payload received")

const unknownTitle = "Unknown"

type WebhookService struct {
	authorizer *Authorizer
	dispatcher *Dispatcher
}

func NewWebhookService(authorizer *Authorizer, dispatcher *Dispatcher) *WebhookService {
	return &WebhookService{authorizer: authorizer, dispatcher: dispatcher}
}

// Handle runs one webhook payload through authorization, the media type
// filter and the dispatcher. It never returns an error: faults are logged
// and collapsed into a 500 result.
func (s *WebhookService) Handle(ctx context.Context, payload string) model.Result {
	event, err := decodeEvent(payload)
	if err != nil {
		log.Error().Err(err).Msg("No payload received")
		return model.ResultNoPayload
	}

	title := event.Metadata.Title
	if title == "" {
		title = unknownTitle
	}

	if !s.authorizer.IsAuthorized(event.Player) {
		return model.ResultNothingToDo
	}

	if t := event.Metadata.Type; t != model.MediaTypeMovie && t != model.MediaTypeEpisode {
		log.Info().Str("title", title).Str("type", string(t)).Msg("Neither movie nor episode")
		return model.ResultNothingToDo
	}

	log.Info().Str("event", event.Event).Str("title", title).Msg("Launching actions")

	result, err := s.dispatcher.Dispatch(ctx, model.ParseEventKind(event.Event))
	if err != nil {
		log.Error().Err(err).Str("event", event.Event).Str("title", title).Msg("Dispatch failed")
		return model.ResultFault
	}
	return result
}

func decodeEvent(payload string) (*model.Event, error) {
	if payload == "" {
		return nil, ErrNoPayload
	}

	// A JSON object with no keys counts as no payload at all.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPayload, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoPayload
	}

	var event model.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPayload, err)
	}
	return &event, nil
}
