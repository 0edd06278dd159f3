package compositor

import (
	"os"
	"testing"
	"time"
)

func TestDefaultConfigMatchesSpecLiterals(t *testing.T) {
	c := defaultConfig()
	cases := []struct {
		name string
		got  any
		want any
	}{
		{"TileSize", c.TileSize, 256},
		{"MinWorldZoom", c.MinWorldZoom, 1.0},
		{"ZoomSettleMillis", c.ZoomSettleMillis, 300},
		{"TickMillis", c.TickMillis, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestWithDefaultsFillsOnlyZeroFields(t *testing.T) {
	c := Config{TileSize: 512}.withDefaults()
	if c.TileSize != 512 {
		t.Errorf("TileSize = %d, want the explicitly set 512", c.TileSize)
	}
	if c.ZoomSettleMillis != 300 {
		t.Errorf("ZoomSettleMillis = %d, want the default 300", c.ZoomSettleMillis)
	}
}

func TestConfigDurationHelpers(t *testing.T) {
	c := Config{ZoomSettleMillis: 300, TickMillis: 100}
	if c.zoomSettleDuration() != 300*time.Millisecond {
		t.Errorf("zoomSettleDuration = %v, want 300ms", c.zoomSettleDuration())
	}
	if c.tickDuration() != 100*time.Millisecond {
		t.Errorf("tickDuration = %v, want 100ms", c.tickDuration())
	}
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	c, err := LoadConfig("/nonexistent/path/compositor.toml")
	if err != nil {
		t.Fatalf("LoadConfig error = %v, want nil for a missing file", err)
	}
	if c != defaultConfig() {
		t.Errorf("LoadConfig(missing) = %+v, want defaults", c)
	}
}

func TestLoadConfigParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/compositor.toml"
	contents := "TileSize = 128\nZoomSettleMillis = 500\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error = %v", err)
	}
	if c.TileSize != 128 {
		t.Errorf("TileSize = %d, want 128", c.TileSize)
	}
	if c.ZoomSettleMillis != 500 {
		t.Errorf("ZoomSettleMillis = %d, want 500", c.ZoomSettleMillis)
	}
	if c.TickMillis != 100 {
		t.Errorf("TickMillis = %d, want default 100 for an unset field", c.TickMillis)
	}
}
