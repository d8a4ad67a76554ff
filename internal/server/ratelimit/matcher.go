package ratelimit

import "strings"

// MatchEndpoint resolves the rate tier for a request. Exact path and method
// matches win over prefix entries; a Path ending in "/" covers everything
// below it, so "/check-ins/" also matches "/check-ins/{id}". The health
// endpoint is always unlimited. Returns nil when only the default tier applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{} // Limit 0 means unlimited
	}

	var prefix *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefix == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefix = cfg
		}
	}
	return prefix
}
