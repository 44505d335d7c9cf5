package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Selectors — селекторы целевого сайта, загружаются из отдельного YAML
type Selectors struct {
	Notice            string `yaml:"notice"`
	AcceptButtonID    string `yaml:"accept_button_id"`
	AcceptButtonLabel string `yaml:"accept_button_label"`
	Nav               string `yaml:"nav"`
	NavLink           string `yaml:"nav_link"`
	ArticleContainer  string `yaml:"article_container"`
	ArticleCard       string `yaml:"article_card"`
	Header            string `yaml:"header"`
	HeaderLink        string `yaml:"header_link"`
	Content           string `yaml:"content"`
	Image             string `yaml:"image"`
	ImageAttr         string `yaml:"image_attr"`
	ImageFallbackAttr string `yaml:"image_fallback_attr"`
}

// LoadSelectors загружает селекторы из YAML файла
func LoadSelectors(filePath string) (*Selectors, error) {
	if filePath == "" {
		return nil, fmt.Errorf("selectors file path is empty")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read selectors %s: %w", filePath, err)
	}

	var selectors Selectors
	if err := yaml.Unmarshal(data, &selectors); err != nil {
		return nil, fmt.Errorf("failed to parse selectors %s: %w", filePath, err)
	}

	if err := validateSelectors(&selectors); err != nil {
		return nil, fmt.Errorf("invalid selectors %s: %w", filePath, err)
	}

	return &selectors, nil
}

// LoadSelectorsFromConfig загружает селекторы по пути из конфига.
// Относительный путь разрешается относительно директории конфига.
func (c *Config) LoadSelectorsFromConfig() (*Selectors, error) {
	filePath := c.SelectorsFile
	if !filepath.IsAbs(filePath) && c.baseDir != "" {
		filePath = filepath.Join(c.baseDir, filePath)
	}

	return LoadSelectors(filePath)
}

// validateSelectors проверяет минимальный набор селекторов
func validateSelectors(s *Selectors) error {
	if s.Notice == "" {
		return fmt.Errorf("notice is required")
	}
	if s.AcceptButtonID == "" {
		return fmt.Errorf("accept_button_id is required")
	}
	if s.AcceptButtonLabel == "" {
		return fmt.Errorf("accept_button_label is required")
	}
	if s.Nav == "" {
		return fmt.Errorf("nav is required")
	}
	if s.NavLink == "" {
		return fmt.Errorf("nav_link is required")
	}
	if s.ArticleContainer == "" {
		return fmt.Errorf("article_container is required")
	}
	if s.ArticleCard == "" {
		return fmt.Errorf("article_card is required")
	}
	if s.Header == "" {
		return fmt.Errorf("header is required")
	}
	if s.HeaderLink == "" {
		return fmt.Errorf("header_link is required")
	}
	if s.Content == "" {
		return fmt.Errorf("content is required")
	}
	if s.Image == "" {
		return fmt.Errorf("image is required")
	}
	if s.ImageAttr == "" {
		return fmt.Errorf("image_attr is required")
	}
	if s.ImageFallbackAttr == "" {
		return fmt.Errorf("image_fallback_attr is required")
	}

	return nil
}
