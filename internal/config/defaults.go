package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "output"
	}
	if cfg.Output.Filename == "" {
		cfg.Output.Filename = "iter01_vectors.png"
	}
	if cfg.Output.WidthInches == 0 {
		cfg.Output.WidthInches = 14
	}
	if cfg.Output.HeightInches == 0 {
		cfg.Output.HeightInches = 6
	}
	if cfg.Output.DPI == 0 {
		cfg.Output.DPI = 150
	}

	if cfg.Overview.Title == "" {
		cfg.Overview.Title = "2D vectors"
	}
	if cfg.Overview.Bounds == (Bounds{}) {
		cfg.Overview.Bounds = Bounds{Min: -1, Max: 6}
	}
	if cfg.Overview.Vectors == nil {
		cfg.Overview.Vectors = []VectorEntry{
			{X: 3, Y: 4, Color: "red", Label: "v1 (3, 4)"},
			{X: 2, Y: 1, Color: "blue", Label: "v2 (2, 1)"},
			{X: 5, Y: 2, Color: "green", Label: "v3 (5, 2)"},
			{X: 1, Y: 5, Color: "purple", Label: "v4 (1, 5)"},
		}
	}
	for i := range cfg.Overview.Vectors {
		if cfg.Overview.Vectors[i].Color == "" {
			cfg.Overview.Vectors[i].Color = "blue"
		}
	}

	if cfg.Normalization.Title == "" {
		cfg.Normalization.Title = "Normalization"
	}
	if cfg.Normalization.Bounds == (Bounds{}) {
		cfg.Normalization.Bounds = Bounds{Min: -2, Max: 6}
	}
	// A zero sample is left alone when a label is set so the renderer can report it.
	if cfg.Normalization.Sample == (VectorEntry{}) {
		cfg.Normalization.Sample = VectorEntry{X: 4, Y: 3, Color: "blue", Label: "original"}
	}
	if cfg.Normalization.Sample.Color == "" {
		cfg.Normalization.Sample.Color = "blue"
	}
	if cfg.Normalization.Sample.Label == "" {
		cfg.Normalization.Sample.Label = "original"
	}
	if cfg.Normalization.NormalizedColor == "" {
		cfg.Normalization.NormalizedColor = "red"
	}
	if cfg.Normalization.CircleSegments == 0 {
		cfg.Normalization.CircleSegments = 128
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Watch.DebounceMillis == 0 {
		cfg.Watch.DebounceMillis = 400
	}
}
