package compositor

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds tunables that would otherwise be hardcoded constants.
// Loading a config file is optional; the zero value of every field falls
// back to the documented default when applied via Config.withDefaults.
type Config struct {
	DefaultWindowWidth  int
	DefaultWindowHeight int
	TileSize            int
	MinWorldZoom        float64
	ZoomSettleMillis    int
	TickMillis          int
	MissingRectCacheLen int
	Debug               bool
}

// defaultConfig returns the hardcoded defaults used when no config file is
// present, matching the literal values in the specification.
func defaultConfig() Config {
	return Config{
		DefaultWindowWidth:  800,
		DefaultWindowHeight: 600,
		TileSize:            256,
		MinWorldZoom:        1.0,
		ZoomSettleMillis:    300,
		TickMillis:          100,
		MissingRectCacheLen: 64,
	}
}

// withDefaults fills any zero-valued field of c with the hardcoded default.
func (c Config) withDefaults() Config {
	d := defaultConfig()
	if c.DefaultWindowWidth == 0 {
		c.DefaultWindowWidth = d.DefaultWindowWidth
	}
	if c.DefaultWindowHeight == 0 {
		c.DefaultWindowHeight = d.DefaultWindowHeight
	}
	if c.TileSize == 0 {
		c.TileSize = d.TileSize
	}
	if c.MinWorldZoom == 0 {
		c.MinWorldZoom = d.MinWorldZoom
	}
	if c.ZoomSettleMillis == 0 {
		c.ZoomSettleMillis = d.ZoomSettleMillis
	}
	if c.TickMillis == 0 {
		c.TickMillis = d.TickMillis
	}
	if c.MissingRectCacheLen == 0 {
		c.MissingRectCacheLen = d.MissingRectCacheLen
	}
	return c
}

// zoomSettleDuration returns the configured zoom-settle quiet window.
func (c Config) zoomSettleDuration() time.Duration {
	return time.Duration(c.ZoomSettleMillis) * time.Millisecond
}

// tickDuration returns the configured main-loop tick interval.
func (c Config) tickDuration() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// LoadConfig reads a TOML config file from path, layering it over the
// hardcoded defaults. A missing file is not an error: it simply yields
// the default configuration.
func LoadConfig(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("compositor: decode config %s: %w", path, err)
	}
	return c.withDefaults(), nil
}
