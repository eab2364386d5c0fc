package styleguide

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/heritage.archive/internal/services/portal/records"
	"gopkg.in/yaml.v3"
)

// Fixtures is the sample data rendered into the styleguide. Every section
// is optional.
type Fixtures struct {
	// Now pins the clock used for embargo states so output is reproducible.
	Now time.Time `yaml:"now"`

	Items          []records.Item          `yaml:"items"`
	Embargoes      []records.Embargo       `yaml:"embargoes"`
	PrivacyFlags   []records.PrivacyFlag   `yaml:"privacy_flags"`
	Jobs           []records.BatchJob      `yaml:"jobs"`
	Contributors   []records.Contributor   `yaml:"contributors"`
	AccessRequests []records.AccessRequest `yaml:"access_requests"`
	Entities       []records.Entity        `yaml:"entities"`
	Projects       []records.Project       `yaml:"projects"`

	Progress []ProgressSample `yaml:"progress"`
	Pagers   []PagerSample    `yaml:"pagers"`
}

// ProgressSample is one progress bar to render.
type ProgressSample struct {
	Processed int `yaml:"processed"`
	Total     int `yaml:"total"`
}

// PagerSample is one pager to render.
type PagerSample struct {
	Current int    `yaml:"current"`
	Count   int    `yaml:"count"`
	BaseURL string `yaml:"base_url"`
}

var defaultProgress = []ProgressSample{
	{Processed: 0, Total: 0},
	{Processed: 50, Total: 200},
	{Processed: 200, Total: 200},
}

var defaultPagers = []PagerSample{
	{Current: 1, Count: 0, BaseURL: "/items"},
	{Current: 1, Count: 60, BaseURL: "/items"},
	{Current: 6, Count: 500, BaseURL: "/items?q=mission"},
	{Current: 20, Count: 500, BaseURL: "/items"},
}

// DecodeFixtures reads fixtures from YAML. Unknown fields are rejected so
// typos in sample files surface instead of rendering empty sections. An
// empty document yields the default samples.
func DecodeFixtures(r io.Reader) (Fixtures, error) {
	var fx Fixtures
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	fx.applyDefaults()
	return fx, nil
}

// LoadFixtures reads fixtures from path. An empty path yields the default
// samples only.
func LoadFixtures(path string) (Fixtures, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		var fx Fixtures
		fx.applyDefaults()
		return fx, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer file.Close()
	fx, err := DecodeFixtures(file)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", path, err)
	}
	return fx, nil
}

func (fx *Fixtures) applyDefaults() {
	if len(fx.Progress) == 0 {
		fx.Progress = append([]ProgressSample(nil), defaultProgress...)
	}
	if len(fx.Pagers) == 0 {
		fx.Pagers = append([]PagerSample(nil), defaultPagers...)
	}
}
