package location

import (
	"io"
	"net/url"
	"os"
	"strings"

	"dario.cat/mergo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v2"
)

// SourceKind selects a Source implementation in Config.
type SourceKind string

const (
	// SourceAuto picks the browser path under wasm and memory elsewhere.
	SourceAuto    SourceKind = "auto"
	SourceBrowser SourceKind = "browser"
	SourceHash    SourceKind = "hash"
	SourceMemory  SourceKind = "memory"
)

// Config is the file form of a router setup.
//
//	base: /app
//	source: memory
//	case_folding: simple
//	memory:
//	  path: /app/dashboard
//	  record: true
type Config struct {
	Base        string       `yaml:"base" json:"base"`
	Source      SourceKind   `yaml:"source" json:"source"`
	CaseFolding CaseFolding  `yaml:"case_folding" json:"case_folding"`
	// URL is the initial address of the simulated window used by the
	// browser and hash sources outside a browser.
	URL    string       `yaml:"url" json:"url"`
	Memory MemoryConfig `yaml:"memory" json:"memory"`
}

var ConfigDefault = Config{
	Base:        "",
	Source:      SourceAuto,
	CaseFolding: CaseFoldingSimple,
	URL:         defaultOrigin + "/",
	Memory: MemoryConfig{
		Path: "/",
	},
}

// LoadConfig decodes YAML from r and fills unset fields from
// ConfigDefault.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, newInternalError(err, "read location config")
	}
	return ParseConfig(data)
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, newInternalError(err, "open location config")
	}
	defer f.Close()
	return LoadConfig(f)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, newMalformedConfigError(err)
	}

	cfg, err := configDefault(cfg)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configDefault(config ...Config) (Config, error) {
	if len(config) == 0 {
		return ConfigDefault, nil
	}

	cfg := config[0]
	if err := mergo.Merge(&cfg, ConfigDefault); err != nil {
		return Config{}, newInternalError(err, "merge location config defaults")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Base, validation.By(validBase)),
		validation.Field(&c.Source, validation.In(SourceAuto, SourceBrowser, SourceHash, SourceMemory)),
		validation.Field(&c.CaseFolding, validation.In(CaseFoldingSimple, CaseFoldingFull)),
		validation.Field(&c.URL, validation.By(validURL)),
	)
	if err != nil {
		return newValidationError(err)
	}
	return nil
}

func validBase(value any) error {
	base, _ := value.(string)
	if strings.ContainsAny(base, "?#") {
		return validation.NewError("validation_location_base", "must be a path without query or fragment")
	}
	return nil
}

func validURL(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return validation.NewError("validation_location_url", "must be a valid URL")
	}
	if u.IsAbs() && u.Host == "" {
		return validation.NewError("validation_location_url", "must include a host")
	}
	return nil
}

// NewSource builds the configured Source.
func (c Config) NewSource() Source {
	switch c.Source {
	case SourceBrowser:
		return NewBrowser(DefaultWindow(c.URL))
	case SourceHash:
		return NewHash(DefaultWindow(c.URL))
	case SourceMemory:
		return newMemory(c.Memory)
	default:
		return DefaultSource()
	}
}

// Options converts c to router options.
func (c Config) Options() []Option {
	return []Option{
		WithBase(c.Base),
		WithCaseFolding(c.CaseFolding),
		WithSourceFactory(c.NewSource),
	}
}

// Router validates c and builds a Router; opts are applied after the
// configured ones. Call Close on the router when done: browser and hash
// sources outside a browser run a SimulatedWindow event loop.
func (c Config) Router(opts ...Option) (*Router, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(append(c.Options(), opts...)...), nil
}
