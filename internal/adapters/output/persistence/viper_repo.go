package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"plex-hue-webhook/internal/domain/model"
	"plex-hue-webhook/internal/ports"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var ErrMissingBridge = errors.New("Hue bridge address and user are required")

const defaultListen = ":20000"

// Environment names kept from the first deployment of this service.
var envBindings = map[string]string{
	"bridge.address": "PHUE_BRIDGE_IP",
	"bridge.token":   "PHUE_BRIDGE_USER",
	"whitelist":      "PLEX_PLAYER_WHITELIST",
	"lights":         "PHUE_LIGHTS",
	"listen":         "LISTEN_ADDR",
	"log.level":      "LOG_LEVEL",
	"log.json":       "LOG_JSON",
	"log.file":       "LOG_FILE",
}

var _ ports.ConfigRepository = (*ViperConfigRepository)(nil)

// ViperConfigRepository reads configuration from an optional YAML file,
// a .env file and the process environment, environment winning.
type ViperConfigRepository struct {
	filepath string
	envFiles []string
}

func NewViperConfigRepository(filepath string, envFiles ...string) *ViperConfigRepository {
	return &ViperConfigRepository{filepath: filepath, envFiles: envFiles}
}

func (r *ViperConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	if err := r.loadEnvFiles(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("listen", defaultListen)
	v.SetDefault("log.level", "info")
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if r.filepath != "" {
		v.SetConfigFile(r.filepath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", r.filepath, err)
		}
	}

	lights, err := parseLights(v.GetStringSlice("lights"))
	if err != nil {
		return nil, err
	}

	cfg := &model.Config{
		Bridge: model.BridgeConfig{
			Address: v.GetString("bridge.address"),
			Token:   v.GetString("bridge.token"),
		},
		Whitelist: splitList(v.GetStringSlice("whitelist")),
		Lights:    lights,
		Listen:    v.GetString("listen"),
		Log: model.LogConfig{
			Level: v.GetString("log.level"),
			JSON:  v.GetBool("log.json"),
			File:  v.GetString("log.file"),
		},
	}

	if cfg.Bridge.Address == "" || cfg.Bridge.Token == "" {
		return nil, ErrMissingBridge
	}
	if len(cfg.Whitelist) == 0 {
		log.Warn().Msg("Player whitelist is empty, every webhook will be ignored")
	}
	if len(cfg.Lights) == 0 {
		log.Warn().Msg("No lights configured")
	}

	return cfg, nil
}

// loadEnvFiles never overrides variables already set in the environment.
func (r *ViperConfigRepository) loadEnvFiles() error {
	for _, f := range r.envFiles {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		out = append(out, strings.Split(item, ",")...)
	}
	out = lo.Map(out, func(s string, _ int) string { return strings.TrimSpace(s) })
	return lo.Filter(out, func(s string, _ int) bool { return s != "" })
}

func parseLights(items []string) ([]int, error) {
	var lights []int
	for _, item := range splitList(items) {
		id, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid light id %q: %w", item, err)
		}
		lights = append(lights, id)
	}
	return lights, nil
}
