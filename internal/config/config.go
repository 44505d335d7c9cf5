package config

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL       string              `yaml:"base_url"`
	MaxArticles   int                 `yaml:"max_articles"`
	Browser       BrowserConfig       `yaml:"browser"`
	HTTP          HttpConfig          `yaml:"http"`
	Translate     TranslateConfig     `yaml:"translate"`
	Output        OutputConfig        `yaml:"output"`
	SelectorsFile string              `yaml:"selectors_file"`
	Storage       StorageConfig       `yaml:"storage"`
	Observability ObservabilityConfig `yaml:"observability"`

	// Директория конфиг-файла: относительный selectors_file
	// разрешается относительно неё
	baseDir string
}

type BrowserConfig struct {
	ChromePath    string `yaml:"chrome_path"`
	Headless      bool   `yaml:"headless"`
	ImplicitWaitS int    `yaml:"implicit_wait_s"`
	SettledWaitS  int    `yaml:"settled_wait_s"`
	ElementWaitS  int    `yaml:"element_wait_s"`
}

type HttpConfig struct {
	UserAgent     string `yaml:"user_agent"`
	ImageTimeoutS int    `yaml:"image_timeout_s"`
}

type TranslateConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Source    string `yaml:"source"`
	Target    string `yaml:"target"`
	Format    string `yaml:"format"`
	TimeoutS  int    `yaml:"timeout_s"`
	APIKeyEnv string `yaml:"api_key_env"`
}

type OutputConfig struct {
	ImagesDir string `yaml:"images_dir"`
}

type StorageConfig struct {
	Enabled          bool   `yaml:"enabled"`
	Driver           string `yaml:"driver"`
	DSN              string `yaml:"dsn"`
	CommandTimeoutMS int    `yaml:"command_timeout_ms"`
}

type ObservabilityConfig struct {
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Validation
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.MaxArticles <= 0 {
		return fmt.Errorf("max_articles must be > 0")
	}
	if c.Browser.ImplicitWaitS <= 0 {
		return fmt.Errorf("browser.implicit_wait_s must be > 0")
	}
	if c.Browser.SettledWaitS <= 0 {
		return fmt.Errorf("browser.settled_wait_s must be > 0")
	}
	if c.Browser.ElementWaitS <= 0 {
		return fmt.Errorf("browser.element_wait_s must be > 0")
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent is required")
	}
	if c.HTTP.ImageTimeoutS <= 0 {
		return fmt.Errorf("http.image_timeout_s must be > 0")
	}
	if c.Translate.Endpoint == "" {
		return fmt.Errorf("translate.endpoint is required")
	}
	if c.Translate.Source == "" {
		return fmt.Errorf("translate.source is required")
	}
	if c.Translate.Target == "" {
		return fmt.Errorf("translate.target is required")
	}
	if c.Translate.Format == "" {
		return fmt.Errorf("translate.format is required")
	}
	if c.Translate.TimeoutS <= 0 {
		return fmt.Errorf("translate.timeout_s must be > 0")
	}
	if c.Translate.APIKeyEnv == "" {
		return fmt.Errorf("translate.api_key_env is required")
	}
	if c.Output.ImagesDir == "" {
		return fmt.Errorf("output.images_dir is required")
	}
	if c.SelectorsFile == "" {
		return fmt.Errorf("selectors_file is required")
	}
	if c.Storage.Enabled {
		if c.Storage.Driver != "mssql" {
			return fmt.Errorf("storage.driver must be 'mssql'")
		}
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required when storage.enabled is true")
		}
		if c.Storage.CommandTimeoutMS <= 0 {
			return fmt.Errorf("storage.command_timeout_ms must be > 0")
		}
	}
	if c.Observability.LogPath == "" {
		return fmt.Errorf("observability.log_path is required")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	return nil
}

// Getters
func (c *Config) GetImplicitWait() time.Duration {
	return time.Duration(c.Browser.ImplicitWaitS) * time.Second
}

func (c *Config) GetSettledWait() time.Duration {
	return time.Duration(c.Browser.SettledWaitS) * time.Second
}

func (c *Config) GetElementWait() time.Duration {
	return time.Duration(c.Browser.ElementWaitS) * time.Second
}

func (c *Config) GetImageTimeout() time.Duration {
	return time.Duration(c.HTTP.ImageTimeoutS) * time.Second
}

func (c *Config) GetTranslateTimeout() time.Duration {
	return time.Duration(c.Translate.TimeoutS) * time.Second
}

func (c *Config) GetCommandTimeout() time.Duration {
	return time.Duration(c.Storage.CommandTimeoutMS) * time.Millisecond
}
