package cmd

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Fixtures string `env:"CMD_TEST_FIXTURES" envDefault:"fixtures.yaml"`
	Format   string `env:"CMD_TEST_FORMAT" envDefault:"html"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_FIXTURES", "env.yaml")
	t.Setenv("CMD_TEST_FORMAT", "json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Fixtures, "fixtures", cfgRef.Fixtures, "fixtures")
	fs.StringVar(&cfgRef.Format, "format", cfgRef.Format, "format")

	if err := ParseArgs(fs, []string{"-fixtures", "flag.yaml"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Fixtures != "flag.yaml" {
		t.Fatalf("expected flag value for fixtures, got %q", cfgRef.Fixtures)
	}
	if cfgRef.Format != "json" {
		t.Fatalf("expected env format, got %q", cfgRef.Format)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil config target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceStyleguide, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("HERITAGE_ARCHIVE_OTEL_ENDPOINT", "")
	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceStyleguide, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry error = %v, want %v", err, want)
	}
}

func TestLoadDotEnvSkipsMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv missing file: %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "CMD_TEST_DOTENV_NEW=from-file\nCMD_TEST_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("CMD_TEST_DOTENV_SET", "from-env")
	t.Setenv("CMD_TEST_DOTENV_NEW", "")
	os.Unsetenv("CMD_TEST_DOTENV_NEW")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("CMD_TEST_DOTENV_NEW") })

	if got := os.Getenv("CMD_TEST_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("new value = %q, want from-file", got)
	}
	if got := os.Getenv("CMD_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("existing value = %q, want from-env", got)
	}
}
