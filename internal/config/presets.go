package config

// Presets are named viewing setups selectable from the CLI.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"fast": {
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS, Grid: true},
		Camera: CameraConfig{Distance: DefaultCameraDist, Sensitivity: DefaultSensitivity},
		Sim:    SimConfig{TimeScale: 10.0, DoubleClickMS: DefaultDoubleClickMS},
		Texture: TextureConfig{
			LandDensity: DefaultLandDensity,
			Seed:        DefaultTextureSeed,
		},
		DataDir: "data",
	},
	"calm": {
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, FPS: 30, Grid: false},
		Camera: CameraConfig{Distance: 600.0, Sensitivity: 0.15},
		Sim:    SimConfig{TimeScale: 0.25, DoubleClickMS: DefaultDoubleClickMS},
		Texture: TextureConfig{
			LandDensity: DefaultLandDensity,
			Seed:        DefaultTextureSeed,
		},
		DataDir: "data",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
