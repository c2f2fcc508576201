package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileName is the default config file name inside the user's home directory.
const FileName = ".box-annotator.json"

// Window size limits.
const (
	MinWindowWidth  = 640
	MinWindowHeight = 480
)

// KnownExtraFormats lists the values accepted in ExtraFormats.
var KnownExtraFormats = []string{"kitti", "via", "sloth"}

// Config holds runtime configuration for the annotator.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Canvas interaction
	HandleSize int `json:"handle_size"`

	// Window
	WindowWidth  int  `json:"window_width"`
	WindowHeight int  `json:"window_height"`
	DarkMode     bool `json:"dark_mode"`

	// Files
	LastImageDir string   `json:"last_image_dir"`
	OutputDir    string   `json:"output_dir"`    // empty writes next to the image
	ExtraFormats []string `json:"extra_formats"` // written beside the VOC file
	CaptureDir   string   `json:"capture_dir"`   // empty uses the temp dir

	// Screen area grabbed by "Capture Screen"; zero size grabs the full screen.
	CaptureRegion Region `json:"capture_region"`
}

// Region is a screen rectangle in pixels.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		HandleSize:   6,
		WindowWidth:  1100,
		WindowHeight: 800,
		DarkMode:     false,
	}
}

// DefaultPath returns ~/.box-annotator.json, or the file name alone when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.HandleSize <= 0 || c.HandleSize > 50 {
		c.HandleSize = 6
	}
	if c.WindowWidth < MinWindowWidth {
		c.WindowWidth = MinWindowWidth
	}
	if c.WindowHeight < MinWindowHeight {
		c.WindowHeight = MinWindowHeight
	}
	if c.CaptureRegion.Empty() {
		c.CaptureRegion = Region{}
	}
	formats := c.ExtraFormats[:0:0]
	for _, f := range c.ExtraFormats {
		f = strings.ToLower(strings.TrimSpace(f))
		if slices.Contains(KnownExtraFormats, f) && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	c.ExtraFormats = formats
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
