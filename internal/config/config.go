package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the launch settings for either host.
type Config struct {
	Width    int
	Height   int
	FPS      float64
	Debug    bool
	Seed     uint64
	Audio    bool
	LogLevel string
	LogFmt   string
}

func Default() Config {
	return Config{
		Width:    900,
		Height:   900,
		FPS:      144,
		Debug:    true,
		Seed:     uint64(time.Now().UnixNano()),
		Audio:    true,
		LogLevel: "info",
		LogFmt:   "text",
	}
}

// Load reads an optional .env file from the working directory and then the
// environment. Values that do not parse keep their default and are returned
// as warnings; the config itself is always usable.
func Load(files ...string) (Config, []error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var warns []error
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			warns = append(warns, fmt.Errorf("load %s: %w", f, err))
		}
	}

	c := Default()
	getInt(&c.Width, "SHOOTER_WIDTH", &warns)
	getInt(&c.Height, "SHOOTER_HEIGHT", &warns)
	getFloat(&c.FPS, "SHOOTER_FPS", &warns)
	getBool(&c.Debug, "SHOOTER_DEBUG", &warns)
	getBool(&c.Audio, "SHOOTER_AUDIO", &warns)
	if s, ok := os.LookupEnv("SHOOTER_SEED"); ok && s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		} else {
			warns = append(warns, fmt.Errorf("SHOOTER_SEED: %w", err))
		}
	}
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		c.LogLevel = s
	}
	if s := os.Getenv("LOG_FORMAT"); s != "" {
		c.LogFmt = s
	}
	return c, warns
}

func getInt(dst *int, key string, warns *[]error) {
	s := os.Getenv(key)
	if s == "" {
		return
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		*warns = append(*warns, fmt.Errorf("%s: invalid size %q", key, s))
		return
	}
	*dst = v
}

func getFloat(dst *float64, key string, warns *[]error) {
	s := os.Getenv(key)
	if s == "" {
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		*warns = append(*warns, fmt.Errorf("%s: invalid rate %q", key, s))
		return
	}
	*dst = v
}

func getBool(dst *bool, key string, warns *[]error) {
	s := os.Getenv(key)
	if s == "" {
		return
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		*warns = append(*warns, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = v
}
