package runner

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/nlsolve/iterate"
	"github.com/pelletier/go-toml/v2"
)

// ErrBadConfig is returned (wrapped) for configurations Run cannot use.
var ErrBadConfig = errors.New("runner: invalid config")

// Reference session values.
const (
	DefaultX0            = 1.5
	DefaultY0            = 3.5
	DefaultJacobiMaxIter = 200
	DefaultPlotFile      = "convergence.png"
)

// Config describes one solve session. It is a plain value; nothing is read
// from the environment.
type Config struct {
	X0   float64 `toml:"x0"`
	Y0   float64 `toml:"y0"`
	Eps  float64 `toml:"eps"`
	Step float64 `toml:"step"` // secant finite-difference step

	JacobiMaxIter int `toml:"jacobi_max_iter"`
	SeidelMaxIter int `toml:"seidel_max_iter"`
	NewtonMaxIter int `toml:"newton_max_iter"`
	SecantMaxIter int `toml:"secant_max_iter"`

	SaveCSV  bool   `toml:"save_csv"`
	SavePlot bool   `toml:"save_plot"`
	OutDir   string `toml:"out_dir"`
	PlotFile string `toml:"plot_file"`
}

// DefaultConfig returns the reference session: start (1.5, 3.5), eps 1e-6,
// caps 200/500/100/100, no exports, output in the working directory.
func DefaultConfig() Config {
	return Config{
		X0:            DefaultX0,
		Y0:            DefaultY0,
		Eps:           iterate.DefaultEpsilon,
		Step:          iterate.DefaultStep,
		JacobiMaxIter: DefaultJacobiMaxIter,
		SeidelMaxIter: iterate.DefaultFixedPointMaxIter,
		NewtonMaxIter: iterate.DefaultNewtonMaxIter,
		SecantMaxIter: iterate.DefaultNewtonMaxIter,
		OutDir:        ".",
		PlotFile:      DefaultPlotFile,
	}
}

// Validate reports the first problem found, wrapped around ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case !finite(c.X0) || !finite(c.Y0):
		return fmt.Errorf("start (%v, %v) must be finite: %w", c.X0, c.Y0, ErrBadConfig)
	case !finite(c.Eps) || c.Eps < 0:
		return fmt.Errorf("eps %v must be finite and non-negative: %w", c.Eps, ErrBadConfig)
	case !finite(c.Step) || c.Step <= 0:
		return fmt.Errorf("step %v must be finite and positive: %w", c.Step, ErrBadConfig)
	case c.JacobiMaxIter <= 0, c.SeidelMaxIter <= 0, c.NewtonMaxIter <= 0, c.SecantMaxIter <= 0:
		return fmt.Errorf("iteration caps must be positive: %w", ErrBadConfig)
	case c.SavePlot && c.PlotFile == "":
		return fmt.Errorf("plot_file required when save_plot is set: %w", ErrBadConfig)
	}

	return nil
}

// maxIter returns the cap configured for m.
func (c Config) maxIter(m iterate.Method) int {
	switch m {
	case iterate.MethodJacobi:
		return c.JacobiMaxIter
	case iterate.MethodSeidel:
		return c.SeidelMaxIter
	case iterate.MethodNewton:
		return c.NewtonMaxIter
	default:
		return c.SecantMaxIter
	}
}

// options translates c into driver options for m. c must be valid.
func (c Config) options(m iterate.Method) []iterate.Option {
	return []iterate.Option{
		iterate.WithEpsilon(c.Eps),
		iterate.WithMaxIter(c.maxIter(m)),
		iterate.WithStep(c.Step),
	}
}

// ParseConfig decodes a TOML document over DefaultConfig. Unknown keys are
// rejected. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
