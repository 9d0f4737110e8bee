package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/riverfjs/sitemark"
)

// fileConfig is the on-disk TOML configuration.
//
//	class  = "prose"
//	format = "html"
//
//	[render]
//	link_target   = "_blank"
//	link_rel      = "noreferrer"
//	bullet_symbol = "•"
type fileConfig struct {
	Class  string                `toml:"class"`
	Format string                `toml:"format"`
	Render sitemark.RenderConfig `toml:"render"`
}

func defaultFileConfig() *fileConfig {
	return &fileConfig{
		Format: formatTree,
		Render: *sitemark.DefaultConfig(),
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (*fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
