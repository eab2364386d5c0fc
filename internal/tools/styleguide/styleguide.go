// Package styleguide renders every badge table and sample portal rows so
// designers can review the shared status colors in one page.
package styleguide

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/heritage.archive/internal/platform/cmd"
	"github.com/louisbranch/heritage.archive/internal/platform/otel"
	"github.com/louisbranch/heritage.archive/internal/services/portal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const nowLayout = "2006-01-02"

// Config holds styleguide command configuration.
type Config struct {
	FixturesPath string
	Format       string
	OutPath      string
	// Now overrides the fixture clock (YYYY-MM-DD).
	Now     string
	Timeout time.Duration
	Portal  portal.Config
}

type envConfig struct {
	FixturesPath string        `env:"HERITAGE_ARCHIVE_STYLEGUIDE_FIXTURES"`
	Format       string        `env:"HERITAGE_ARCHIVE_STYLEGUIDE_FORMAT" envDefault:"html"`
	Timeout      time.Duration `env:"HERITAGE_ARCHIVE_STYLEGUIDE_TIMEOUT" envDefault:"30s"`
}

// ParseConfig parses env defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := cmd.ParseConfig(&envCfg); err != nil {
		return Config{}, err
	}
	portalCfg, err := portal.LoadConfig()
	if err != nil {
		return Config{}, fmt.Errorf("portal config: %w", err)
	}

	cfg := Config{
		FixturesPath: envCfg.FixturesPath,
		Format:       envCfg.Format,
		Timeout:      envCfg.Timeout,
		Portal:       portalCfg,
	}
	fs.StringVar(&cfg.FixturesPath, "fixtures", cfg.FixturesPath, "path to a YAML fixture file (default: HERITAGE_ARCHIVE_STYLEGUIDE_FIXTURES or built-in samples)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (html|json)")
	fs.StringVar(&cfg.OutPath, "out", "", "output file (default: stdout)")
	fs.StringVar(&cfg.Now, "now", "", "render as of this date (YYYY-MM-DD)")
	fs.StringVar(&cfg.Portal.Locale, "locale", cfg.Portal.Locale, "message locale")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Format != FormatHTML && c.Format != FormatJSON {
		return fmt.Errorf("-format must be %s or %s, got %q", FormatHTML, FormatJSON, c.Format)
	}
	if c.Timeout <= 0 {
		return errors.New("-timeout must be > 0")
	}
	if strings.TrimSpace(c.Now) != "" {
		if _, err := time.Parse(nowLayout, strings.TrimSpace(c.Now)); err != nil {
			return fmt.Errorf("-now: %w", err)
		}
	}
	return c.Portal.Validate()
}

// Run renders the styleguide. Output goes to cfg.OutPath when set, otherwise
// to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) (err error) {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Format == "" {
		cfg.Format = FormatHTML
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Portal == (portal.Config{}) {
		cfg.Portal = portal.DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	ctx, span := otel.Tracer().Start(ctx, "styleguide.render")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("styleguide.format", cfg.Format),
		attribute.String("styleguide.locale", cfg.Portal.Locale),
	)

	if strings.TrimSpace(cfg.FixturesPath) == "" {
		fmt.Fprintln(errOut, "No fixtures given; rendering badge tables and built-in samples only")
	}
	fx, err := LoadFixtures(cfg.FixturesPath)
	if err != nil {
		return err
	}
	now, err := resolveNow(cfg.Now, fx.Now)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	formatter := portal.NewFormatter(cfg.Portal)
	page := BuildPage(formatter, fx, now)
	span.SetAttributes(attribute.Int("styleguide.badge_tables", len(page.BadgeTables)))

	if strings.TrimSpace(cfg.OutPath) == "" {
		return Render(ctx, out, page, formatter.Localizer(), cfg.Format)
	}
	file, err := os.Create(cfg.OutPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Render(ctx, file, page, formatter.Localizer(), cfg.Format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s styleguide to %s\n", cfg.Format, cfg.OutPath)
	return nil
}

// resolveNow prefers the flag, then the fixture clock, then today.
func resolveNow(flagValue string, fixtureNow time.Time) (time.Time, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue != "" {
		now, err := time.Parse(nowLayout, flagValue)
		if err != nil {
			return time.Time{}, fmt.Errorf("-now: %w", err)
		}
		return now, nil
	}
	if !fixtureNow.IsZero() {
		return fixtureNow, nil
	}
	return time.Now().UTC(), nil
}
