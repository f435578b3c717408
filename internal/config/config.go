package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-chase/internal/game"
)

// Config holds the application's configuration values.
type Config struct {
	Tuning   game.Tuning // gameplay constants
	Seed     int64       // ghost RNG seed; 0 means seed from the wall clock
	Scale    float64     // window scale factor
	Mute     bool        // disable sound effects
	LogLevel log.Level   // logrus level for the session logger
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Tuning:   game.DefaultTuning(),
		Scale:    1,
		LogLevel: log.InfoLevel,
	}
}

// Load reads the given .env files (".env" when none are named) if they exist,
// then overlays PACMAN_* environment variables on the defaults.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}

	cfg := Default()
	var err error
	if cfg.Seed, err = getEnvAsInt64("PACMAN_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Scale, err = getEnvAsFloat("PACMAN_SCALE", cfg.Scale); err != nil {
		return Config{}, err
	}
	if cfg.Mute, err = getEnvAsBool("PACMAN_MUTE", cfg.Mute); err != nil {
		return Config{}, err
	}
	if cfg.Tuning.PlayerSpeed, err = getEnvAsFloat("PACMAN_PLAYER_SPEED", cfg.Tuning.PlayerSpeed); err != nil {
		return Config{}, err
	}
	if cfg.Tuning.GhostSpeed, err = getEnvAsFloat("PACMAN_GHOST_SPEED", cfg.Tuning.GhostSpeed); err != nil {
		return Config{}, err
	}
	powerMS, err := getEnvAsInt64("PACMAN_POWER_MS", cfg.Tuning.PowerDuration.Milliseconds())
	if err != nil {
		return Config{}, err
	}
	cfg.Tuning.PowerDuration = time.Duration(powerMS) * time.Millisecond
	lives, err := getEnvAsInt64("PACMAN_LIVES", int64(cfg.Tuning.StartLives))
	if err != nil {
		return Config{}, err
	}
	cfg.Tuning.StartLives = int(lives)

	level := getEnvWithDefault("PACMAN_LOG_LEVEL", cfg.LogLevel.String())
	if cfg.LogLevel, err = log.ParseLevel(level); err != nil {
		return Config{}, fmt.Errorf("config: PACMAN_LOG_LEVEL: %w", err)
	}

	if cfg.Scale <= 0 {
		return Config{}, fmt.Errorf("config: PACMAN_SCALE must be positive, got %.2f", cfg.Scale)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}
