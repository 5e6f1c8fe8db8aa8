package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/algorithms"
	"github.com/katalvlaran/lvlgraph/builder"
	"github.com/katalvlaran/lvlgraph/core"
)

// envPrefix namespaces every variable, e.g. GRAPHDEMO_VERTICES.
const envPrefix = "GRAPHDEMO"

// Config validation errors
var (
	ErrInvalidVertices  = errors.New("vertices must be non-negative")
	ErrInvalidEdge      = errors.New("edge must look like u-v:w")
	ErrInvalidRemove    = errors.New("remove must look like u-v")
	ErrInvalidLogLevel  = errors.New("log_level must be trace, debug, info, warn, or error")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidPreset    = errors.New("preset must be path, cycle, complete, star, wheel, grid:RxC or random:P")
	ErrInvalidMaxWeight = errors.New("max_weight must be positive")
)

// Config is read from the environment by envconfig.
type Config struct {
	Vertices  int      `envconfig:"VERTICES" default:"5"`
	Edges     []string `envconfig:"EDGES" default:"0-1:4,0-2:1,1-2:2,1-3:5,2-3:8,3-4:3"`
	Source    int      `envconfig:"SOURCE" default:"0"`
	Root      int      `envconfig:"ROOT" default:"0"`
	Methods   []string `envconfig:"METHODS" default:"bfs,dfs,dijkstra,prim,kruskal"`
	Remove    string   `envconfig:"REMOVE" default:"1-2"`
	Preset    string   `envconfig:"PRESET"`
	Seed      int64    `envconfig:"SEED" default:"1"`
	MaxWeight int64    `envconfig:"MAX_WEIGHT" default:"9"`
	Metrics   bool     `envconfig:"METRICS" default:"false"`
	LogLevel  string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string   `envconfig:"LOG_FORMAT" default:"console"`
}

// LoadConfig reads envFiles (missing files are ignored) and then the
// process environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid.
// Edge and vertex ranges are checked later by the graph itself.
func ValidateConfig(cfg *Config) error {
	if cfg.Vertices < 0 {
		return ErrInvalidVertices
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil || cfg.LogLevel == "" {
		return ErrInvalidLogLevel
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.Preset != "" {
		if cfg.MaxWeight <= 0 {
			return ErrInvalidMaxWeight
		}
		if _, err := ParsePreset(cfg.Preset, cfg.Vertices); err != nil {
			return err
		}
	}
	for _, m := range cfg.Methods {
		if _, err := algorithms.ParseMethod(m); err != nil {
			return err
		}
	}

	return nil
}

// BuildGraph creates the configured graph: the preset topology when one is
// set, otherwise the explicit edge list.
func BuildGraph(cfg *Config) (*core.Graph, error) {
	if cfg.Preset != "" {
		if cfg.MaxWeight <= 0 {
			return nil, ErrInvalidMaxWeight
		}
		con, err := ParsePreset(cfg.Preset, cfg.Vertices)
		if err != nil {
			return nil, err
		}

		return builder.BuildGraph(cfg.Vertices, []builder.BuilderOption{
			builder.WithSeed(cfg.Seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, cfg.MaxWeight)),
		}, con)
	}

	g := core.NewGraph(cfg.Vertices)
	for _, tok := range cfg.Edges {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		u, v, w, err := ParseEdge(tok)
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("edge %q: %w", tok, err)
		}
	}

	return g, nil
}

// ParsePreset maps a preset name to a builder constructor spanning n
// vertices. grid:RxC must satisfy R*C == n; random:P takes an edge
// probability in [0,1].
func ParsePreset(s string, n int) (builder.Constructor, error) {
	name, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch name {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "grid":
		rs, cs, ok := strings.Cut(arg, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPreset, s)
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil || rows*cols != n {
			return nil, fmt.Errorf("%w: %q with %d vertices", ErrInvalidPreset, s, n)
		}

		return builder.Grid(rows, cols), nil
	case "random":
		p, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPreset, s)
		}

		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPreset, s)
	}
}

// ParseEdge parses "u-v:w".
func ParseEdge(s string) (u, v int, w int64, err error) {
	pair, weight, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
	}
	if u, v, err = parsePair(pair); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
	}
	if w, err = strconv.ParseInt(strings.TrimSpace(weight), 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidEdge, s, err)
	}

	return u, v, w, nil
}

// ParseRemove parses the "u-v" edge to delete. ok is false for an empty value.
func ParseRemove(s string) (u, v int, ok bool, err error) {
	if strings.TrimSpace(s) == "" {
		return 0, 0, false, nil
	}
	if u, v, err = parsePair(s); err != nil {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrInvalidRemove, s)
	}

	return u, v, true, nil
}

func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, ErrInvalidEdge
	}
	u, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, err
	}

	return u, v, nil
}
