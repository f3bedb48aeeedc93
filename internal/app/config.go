package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/session"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application. Values
// come from defaults, then an optional JSON file, then explicit flags.
type Config struct {
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Density    float64 `json:"density"`
	IntervalMS int     `json:"interval_ms"`
	Seed       int64   `json:"seed"`
	Pattern    string  `json:"pattern"`
	CellSize   int     `json:"cell_size"`
	HUDWidth   int     `json:"hud_width"`
	ChartPath  string  `json:"chart_path"`
	SVGPath    string  `json:"svg_path"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := session.DefaultConfig()
	return &Config{
		Rows:       def.Rows,
		Cols:       def.Cols,
		Density:    def.Density,
		IntervalMS: int(def.Interval / time.Millisecond),
		Seed:       def.Seed,
		Pattern:    def.Pattern,
		CellSize:   10,
		HUDWidth:   220,
		ChartPath:  "population.png",
		SVGPath:    "board.svg",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive when randomizing")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial board: random, clear or a preset such as glider")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "initial cell size in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 to hide it")
	fs.StringVar(&c.ChartPath, "chart", c.ChartPath, "where to save the population chart")
	fs.StringVar(&c.SVGPath, "svg", c.SVGPath, "where to save the board snapshot")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON config file")
}

// Load parses args into fs, applying the JSON file named by -config before
// the flags so that explicit flags win.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Load] failed to parse flags")
	}
	if c.ConfigFile == "" {
		return c.Validate()
	}
	if err := c.LoadFile(c.ConfigFile); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Load] failed to parse flags")
	}
	return c.Validate()
}

// LoadFile overlays the values present in a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("board must have positive dimensions, got %dx%d", c.Rows, c.Cols)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %v outside [0, 1]", c.Density)
	case c.IntervalMS <= 0:
		return errors.Errorf("interval must be positive, got %dms", c.IntervalMS)
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.HUDWidth < 0:
		return errors.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	if _, ok := core.Seeders()[c.Pattern]; !ok {
		return errors.Errorf("unknown pattern %q (available: %v)", c.Pattern, core.SeederNames())
	}
	return nil
}

// SessionConfig converts the application settings into a session.Config.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		Rows:     c.Rows,
		Cols:     c.Cols,
		Density:  c.Density,
		Interval: time.Duration(c.IntervalMS) * time.Millisecond,
		Seed:     c.Seed,
		Pattern:  c.Pattern,
	}
}
