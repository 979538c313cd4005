package ratelimit

import (
	"strings"
)

// unlimited is returned for endpoints that are never rate limited
var unlimited = EndpointConfig{}

// MatchEndpoint finds the configuration for a request path and method, or nil for none.
// Exact patterns win over prefix patterns (those ending in "/").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && !strings.HasSuffix(config.Path, "/") && matchPattern(config.Path, path, false) {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && matchPattern(config.Path, path, true) {
			return config
		}
	}

	return nil
}

// matchPattern compares path to pattern segment by segment. "*" matches any single non-empty segment.
// With prefix set, path may have more segments than pattern.
func matchPattern(pattern, path string, prefix bool) bool {
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")

	if prefix {
		if len(pathSegs) <= len(patternSegs) {
			return false
		}
	} else if len(pathSegs) != len(patternSegs) {
		return false
	}

	for i, seg := range patternSegs {
		if seg == "*" {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}
