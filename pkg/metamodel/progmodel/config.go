package progmodel

import (
	"fmt"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

// Config selects the factories of a programming model.
// Environment variables (${VAR}) are substituted before the
// document is parsed.
//
//	factories:           # optional explicit order
//	- ObjectNamed
//	- ActionInvocation
//	exclude:
//	- ${EXCLUDED_FACTORY}
type Config struct {
	Factories []string `json:"factories,omitempty"`
	Exclude   []string `json:"exclude,omitempty"`
}

func ParseConfig(data []byte) (*Config, error) {
	s, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("cannot substitute programming model config: %w", err)
	}
	var cfg Config
	err = yaml.UnmarshalStrict([]byte(s), &cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid programming model config: %w", err)
	}
	return &cfg, nil
}

func ReadConfig(fs vfs.FileSystem, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read programming model config %q: %w", path, err)
	}
	return ParseConfig(data)
}

// Configure provides a new model according to the config.
func (p *ProgrammingModel) Configure(cfg *Config) (*ProgrammingModel, error) {
	if cfg == nil {
		return p, nil
	}
	var err error
	r := p
	if len(cfg.Factories) > 0 {
		r, err = r.Select(cfg.Factories...)
		if err != nil {
			return nil, err
		}
	}
	if len(cfg.Exclude) > 0 {
		r, err = r.Exclude(cfg.Exclude...)
		if err != nil {
			return nil, err
		}
	}
	log.Debug("configured programming model with {{count}} factories", "count", len(r.factories))
	return r, nil
}
