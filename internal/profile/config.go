package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	ProfileDir string `json:"profile_dir"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd  string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	ProfileDirAbs string `json:"-"` // Absolute path to profile directory

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ProfileDir: "oh_profiles",
	}
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".ohp.json"

// globalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/ohp/config.json if set, otherwise
// ~/.config/ohp/config.json. Empty when no home can be determined.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "ohp", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "ohp", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride    string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath         string            // -c/--config flag value
	ProfileDirOverride string            // positional directory argument; empty means no override
	Env                map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/ohp/config.json or $XDG_CONFIG_HOME/ohp/config.json)
// 3. Project config file at default location (.ohp.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. The positional directory argument.
//
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if input.ProfileDirOverride != "" {
		cfg.ProfileDir = input.ProfileDirOverride
	}

	cfg.EffectiveCwd = workDir

	if filepath.IsAbs(cfg.ProfileDir) {
		cfg.ProfileDirAbs = cfg.ProfileDir
	} else {
		cfg.ProfileDirAbs = filepath.Join(workDir, cfg.ProfileDir)
	}

	return cfg, nil
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	path := globalConfigPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, explicitEmpty, loaded, err := loadConfigFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	if explicitEmpty {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrProfileDirEmpty)
	}

	return cfg, path, nil
}

// loadProjectConfig loads the project config file (.ohp.json) or an explicit
// config file. Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		// Explicit config file - must exist
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		// Default project config file - optional
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	cfg, explicitEmpty, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	if explicitEmpty {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, cfgFile, ErrProfileDirEmpty)
	}

	return cfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files
// return zero config. Returns the config, whether profile_dir was explicitly
// set to empty, whether the file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist && !os.IsNotExist(err) {
			return Config{}, false, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, false, nil
	}

	cfg, explicitEmpty, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, explicitEmpty, true, nil
}

func parseConfig(data []byte) (Config, bool, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if unmarshalErr := json.Unmarshal(standardized, &cfg); unmarshalErr != nil {
		return Config{}, false, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	// Distinguish "profile_dir": "" from an absent key.
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := false

	if val, exists := raw["profile_dir"]; exists {
		if str, ok := val.(string); ok && str == "" {
			explicitEmpty = true
		}
	}

	return cfg, explicitEmpty, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.ProfileDir != "" {
		base.ProfileDir = overlay.ProfileDir
	}

	return base
}
