package librarian

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/logger"
)

const maxSearchPageLength = 140

// Config configures a Librarian.
type Config struct {
	Env      folio.Environment `env:"ENVIRONMENT" envDefault:"DEVELOPMENT"`
	Host     string            `env:"HOST" envDefault:"localhost"`
	Port     string            `env:"PORT" envDefault:"3000"`
	RootPath string            `env:"ROOT_PATH"`

	LibraryFile string `env:"LIBRARY_FILE" envDefault:"library.yaml"`

	Verbose            bool `env:"VERBOSE" envDefault:"false"`
	Taskbar            bool `env:"TASKBAR" envDefault:"true"`
	LibraryButton      bool `env:"LIBRARY_BUTTON" envDefault:"true"`
	BlockExternalLinks bool `env:"BLOCK_EXTERNAL_LINKS" envDefault:"false"`
	Compress           bool `env:"COMPRESS" envDefault:"true"`
	SearchPageLength   int  `env:"SEARCH_PAGE_LENGTH" envDefault:"25"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	SentryDSN string `env:"SENTRY_DSN"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`

	RateLimit  float64 `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst  int     `env:"RATE_BURST" envDefault:"20"`
	CORSOrigin string  `env:"CORS_ORIGIN"`
}

// LoadConfig reads a Config from environment variables,
// after loading them from the files, ".env" by default, that exist.
// Variables already set are not overwritten by the files.
//
// LoadConfig returns folio.ErrBadConfig if a variable cannot be used.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: cannot load %s: %s", folio.ErrBadConfig, f, err)
		}
	}

	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %s", folio.ErrBadConfig, err)
	}

	cfg.Env = folio.Environment(strings.ToUpper(cfg.Env.String()))
	cfg.RootPath = strings.TrimRight(cfg.RootPath, "/")
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)

	return cfg, cfg.Valid()
}

// Valid checks the Config describes a server that can run.
func (c Config) Valid() error {
	if err := c.Env.Valid(); err != nil {
		return fmt.Errorf("%w: environment %q", folio.ErrBadConfig, c.Env)
	}

	if c.Port == "" {
		return fmt.Errorf("%w: no port", folio.ErrBadConfig)
	}

	if c.RootPath != "" && !strings.HasPrefix(c.RootPath, "/") {
		return fmt.Errorf("%w: root path %q must start with /", folio.ErrBadConfig, c.RootPath)
	}

	if c.SearchPageLength <= 0 || c.SearchPageLength > maxSearchPageLength {
		return fmt.Errorf("%w: search page length %d not in 1..%d", folio.ErrBadConfig, c.SearchPageLength, maxSearchPageLength)
	}

	if logger.NewLogLevel(c.LogLevel) == logger.LogLevelUnk {
		return fmt.Errorf("%w: log level %q", folio.ErrBadConfig, c.LogLevel)
	}

	return nil
}

// Addr is the address the server listens on.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, c.Port) }
