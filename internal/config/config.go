package config

import "os"

const (
	DefaultDBPath = "pix3lwiki.db"
	DefaultAddr   = ":8787"
)

// DBPath returns the SQLite database path from the PIX3LWIKI_DB env var,
// falling back to DefaultDBPath.
func DBPath() string {
	if env := os.Getenv("PIX3LWIKI_DB"); env != "" {
		return env
	}
	return DefaultDBPath
}

// ListenAddr returns the HTTP listen address from the PIX3LWIKI_ADDR env
// var, falling back to DefaultAddr.
func ListenAddr() string {
	if env := os.Getenv("PIX3LWIKI_ADDR"); env != "" {
		return env
	}
	return DefaultAddr
}

// IndexPath returns the full-text index path from the PIX3LWIKI_INDEX env
// var. Empty means keyword search is disabled.
func IndexPath() string {
	return os.Getenv("PIX3LWIKI_INDEX")
}
