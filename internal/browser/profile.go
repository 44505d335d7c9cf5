package browser

import (
	"fmt"
	"runtime"
	"strings"
)

// Profile описывает браузер сессии: используется только для
// формирования путей вывода, нигде не сохраняется между прогонами
type Profile struct {
	Name     string
	Platform string
	Version  string
}

// Profile строит профиль из CDP Browser.getVersion
func (s *Session) Profile() (*Profile, error) {
	ver, err := s.browser.Version()
	if err != nil {
		return nil, fmt.Errorf("failed to get browser version: %w", err)
	}

	name, version := parseProduct(ver.Product)

	return &Profile{
		Name:     name,
		Platform: runtime.GOOS,
		Version:  version,
	}, nil
}

// parseProduct разбирает строку вида "HeadlessChrome/126.0.6478.55"
func parseProduct(product string) (name, majorVersion string) {
	name = product
	if idx := strings.Index(product, "/"); idx > -1 {
		name = product[:idx]
		version := product[idx+1:]
		if dot := strings.Index(version, "."); dot > -1 {
			version = version[:dot]
		}
		majorVersion = version
	}
	return strings.ToLower(name), majorVersion
}

// DirName возвращает имя подпапки вида chrome_linux_126
func (p *Profile) DirName() string {
	folder := fmt.Sprintf("%s_%s", p.Name, p.Platform)
	if p.Version != "" {
		folder += "_" + p.Version
	}
	return strings.ToLower(strings.ReplaceAll(folder, " ", "_"))
}
