package demo

// Config holds all parameters for a demonstration run.
type Config struct {
	Profile  string `json:"profile"`
	Count    int    `json:"count"`
	MaxDepth int    `json:"max_depth"`
	Seed     int64  `json:"seed"`
	Format   string `json:"format"` // "text" or "json"
	Verbose  bool   `json:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Profile:  "mixed",
		Count:    5,
		MaxDepth: 4,
		Seed:     0, // 0 = random
		Format:   "text",
		Verbose:  false,
	}
}
