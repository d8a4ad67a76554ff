package chat

// Config holds the chat model configuration
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default chat configuration
func DefaultConfig() *Config {
	return &Config{
		Model:       "gemini-2.5-flash",
		Temperature: 0.7,
	}
}

// WithModel returns a new Config with the given model name
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}
