package geocore

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/meshkit/geocore-go/pkg/geocore/logging"
)

// Environment variables consulted by DefaultConfig.
const (
	// EnvConfigFile points at a TOML configuration file.
	EnvConfigFile = "GEOCORE_CONFIG"
	// EnvLibraryPath names an extra directory probed before the standard
	// candidate locations.
	EnvLibraryPath = "GEOCORE_LIBRARY_PATH"
)

// Config controls native module discovery and diagnostics. The zero value
// is usable: standard probing order, platform library name, default
// diagnostic capacity, no logging.
type Config struct {
	// SearchPaths are extra directories probed before the standard candidate
	// locations (executable directory, its parent, working directory, system
	// loader search).
	SearchPaths []string `toml:"search_paths"`

	// LibraryName overrides the platform base file name of the native
	// module (libgeocore.so, libgeocore.dylib, geocore.dll).
	LibraryName string `toml:"library_name"`

	// DiagnosticCapacity bounds the diagnostic log; older entries are
	// evicted first.
	DiagnosticCapacity int `toml:"diagnostic_capacity"`

	// Logger receives structured probing and dispatch events.
	Logger logging.Logger `toml:"-"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("geocore: load config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig builds a configuration from the environment: the file named
// by GEOCORE_CONFIG when set, then GEOCORE_LIBRARY_PATH prepended to the
// search paths. A broken config file is reported, not ignored.
func DefaultConfig() (Config, error) {
	var cfg Config
	if path := os.Getenv(EnvConfigFile); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if dir := os.Getenv(EnvLibraryPath); dir != "" {
		cfg.SearchPaths = append([]string{dir}, cfg.SearchPaths...)
	}
	return cfg, nil
}
