package config

import "time"

// Database and performance constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	SearchTimeout       = 10 * time.Second
	NetworkDialTimeout  = 5 * time.Second

	// Cache settings
	CacheExpiration = 5 * time.Minute
	CacheSize       = 10000

	// Request limits enforced at the HTTP boundary, not by the engine
	MaxSyncEntries  = 200
	MaxCardIDLength = 128
)
