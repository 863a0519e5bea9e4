package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the annotator.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Folder containing frame_NNNNNN.jpg / frame_NNNNNN.npy pairs.
	FramesDir string `json:"frames_dir"`

	// Depth band (metres). Statistics and the depth visualization only
	// consider samples inside [MinDepth, MaxDepth].
	MinDepth float64 `json:"min_depth"`
	MaxDepth float64 `json:"max_depth"`

	// Tracker backend: CSRT, KCF or MIL.
	Tracker string `json:"tracker"`

	// Zoom factor applied per wheel notch.
	ZoomStep float64 `json:"zoom_step"`

	// Hit radius in display pixels for selection resize handles.
	HandleHitRadius int `json:"handle_hit_radius"`

	// Last committed selection in image coordinates, restored on startup.
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`

	// Last visited frame index, restored on startup.
	LastFrameIndex int `json:"last_frame_index"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		MinDepth:        1.0,
		MaxDepth:        20.0,
		Tracker:         "CSRT",
		ZoomStep:        1.2,
		HandleHitRadius: 10,
		LastFrameIndex:  0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.MinDepth <= 0 {
		c.MinDepth = 1.0
	}
	if c.MaxDepth <= c.MinDepth {
		c.MaxDepth = c.MinDepth + 1
	}
	switch c.Tracker {
	case "CSRT", "KCF", "MIL":
	default:
		c.Tracker = "CSRT"
	}
	if c.ZoomStep <= 1.0 || c.ZoomStep > 2.0 {
		c.ZoomStep = 1.2
	}
	if c.HandleHitRadius <= 0 {
		c.HandleHitRadius = 10
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		c.SelectionW, c.SelectionH = 0, 0
	}
	if c.LastFrameIndex < 0 {
		c.LastFrameIndex = 0
	}
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
		return cfg, err
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
