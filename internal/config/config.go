// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Noise   NoiseConfig   `yaml:"noise"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FPSLimit int    `yaml:"fps_limit"`
}

// SceneConfig holds the cube and camera settings.
type SceneConfig struct {
	CubeSize       [3]float32 `yaml:"cube_size"`
	LockCube       bool       `yaml:"lock_cube"`
	SampleScale    int        `yaml:"sample_scale"`
	Zoom           float32    `yaml:"zoom"`
	FovBase        float32    `yaml:"fov_base"`
	OrbitStepDeg   float32    `yaml:"orbit_step_deg"` // degrees per frame
	ZoomSmoothing  float32    `yaml:"zoom_smoothing"`
	WStep          float64    `yaml:"w_step"` // w advance per frame
	ContentWarning bool       `yaml:"content_warning"`
}

// NoiseConfig holds the noise generator settings. Option values use the
// names shown in the parameter panel, e.g. "Open Simplex 2S".
type NoiseConfig struct {
	Type        string         `yaml:"type"`
	Seed        int32          `yaml:"seed"`
	Frequency   float32        `yaml:"frequency"`
	FractalMode string         `yaml:"fractal_mode"`
	FractalType string         `yaml:"fractal_type"`
	Octaves     int            `yaml:"octaves"`
	Lacunarity  float32        `yaml:"lacunarity"`
	Gain        float32        `yaml:"gain"`
	Cellular    CellularConfig `yaml:"cellular"`
	Warp        WarpConfig     `yaml:"warp"`
}

// CellularConfig holds cellular noise settings.
type CellularConfig struct {
	Distance string  `yaml:"distance"`
	Return   string  `yaml:"return"`
	Jitter   float32 `yaml:"jitter"`
}

// WarpConfig holds domain warp settings.
type WarpConfig struct {
	Type      string  `yaml:"type"`
	Amplitude float32 `yaml:"amplitude"`
}

// UIConfig holds panel and overlay settings.
type UIConfig struct {
	Language string `yaml:"language"`
	ShowFPS  bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings used when no file or flag overrides them.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:    "noisecube",
			Width:    800,
			Height:   450,
			FPSLimit: 60,
		},
		Scene: SceneConfig{
			CubeSize:       [3]float32{50, 50, 50},
			LockCube:       false,
			SampleScale:    10,
			Zoom:           1.0,
			FovBase:        45,
			OrbitStepDeg:   0.1,
			ZoomSmoothing:  0.01,
			WStep:          1.0,
			ContentWarning: true,
		},
		Noise: NoiseConfig{
			Type:        "Open Simplex 2S",
			Seed:        1337,
			Frequency:   0.01,
			FractalMode: "None",
			FractalType: "None",
			Octaves:     3,
			Lacunarity:  2.0,
			Gain:        0.5,
			Cellular: CellularConfig{
				Distance: "Euclidean Sq",
				Return:   "Distance",
				Jitter:   1.0,
			},
			Warp: WarpConfig{
				Type:      "Open Simplex 2",
				Amplitude: 1.0,
			},
		},
		UI: UIConfig{
			Language: "en",
			ShowFPS:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
