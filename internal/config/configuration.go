package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFile      = "mystorage.yaml"
	DefaultBaseURL   = "http://localhost:8000/api"
	DefaultSchedule  = "@every 5m"
	DefaultMaxSizeMB = 5
	APIURLEnv        = "MYSTORAGE_API_URL"
)

// FilePath is the location of the yaml configuration file.
type FilePath string

// Overrides carries command line flags that win over the file.
type Overrides struct {
	APIURL    string
	Demo      bool
	LogOutput string
}

type Configuration struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Sync    SyncConfig    `yaml:"sync"`
	Upload  UploadConfig  `yaml:"upload"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Demo    bool          `yaml:"demo"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type SyncConfig struct {
	Schedule string `yaml:"schedule"`
	Disabled bool   `yaml:"disabled"`
}

type UploadConfig struct {
	MaxSizeMB int64 `yaml:"max_size_mb"`
}

type LogConfig struct {
	Format  string `yaml:"format"`
	Level   string `yaml:"level"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"path"`
}

// MaxUploadBytes is the upload size limit in bytes.
func (u UploadConfig) MaxUploadBytes() int64 {
	return u.MaxSizeMB * 1024 * 1024
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err = yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}
	if env := os.Getenv(APIURLEnv); env != "" {
		config.API.BaseURL = env
	}
	config.applyDefaults()
	return &config, nil
}

// ProvideConfiguration loads the file and applies command line overrides.
func ProvideConfiguration(path FilePath, overrides Overrides) (*Configuration, error) {
	if path == "" {
		path = FilePath(DefaultFile)
	}
	cfg, err := LoadConfiguration(string(path))
	if err != nil {
		return nil, err
	}
	if overrides.APIURL != "" {
		cfg.API.BaseURL = overrides.APIURL
	}
	if overrides.Demo {
		cfg.API.Demo = true
	}
	// demo tokens are signed by a per-process backend and must not replace
	// a real stored session
	if cfg.API.Demo && cfg.Storage.Driver == "sqlite" {
		cfg.Storage.Path = strings.TrimSuffix(cfg.Storage.Path, filepath.Ext(cfg.Storage.Path)) + "-demo.db"
	}
	if overrides.LogOutput != "" {
		cfg.Log.Output = overrides.LogOutput
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	return cfg, nil
}

func (c *Configuration) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(DataDir(), "mystorage.db")
	}
	if c.Sync.Schedule == "" {
		c.Sync.Schedule = DefaultSchedule
	}
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stderr"
	}
	if c.Log.LogPath == "" {
		c.Log.LogPath = DataDir()
	}
}

// DataDir is where the local database and log files live by default.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".mystorage"
	}
	return filepath.Join(dir, "mystorage")
}
