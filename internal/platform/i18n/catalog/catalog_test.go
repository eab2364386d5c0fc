package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("af-ZA") {
		t.Fatalf("expected locale af-ZA")
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatalf("expected en-US messages")
	}
	if _, ok := bundle.LocaleMessages("en-US")["badge.job.failed"]; !ok {
		t.Fatalf("expected en-US portal messages")
	}
}

func TestEveryLocaleKeyExistsInBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		for key := range bundle.LocaleMessages(locale) {
			if _, ok := base[key]; !ok {
				t.Fatalf("locale %s defines %q missing from %s", locale, key, BaseLocale)
			}
		}
	}
}

func TestDefaultRegistersMessages(t *testing.T) {
	Default()
	p := message.NewPrinter(language.MustParse("af-ZA"))
	if got := p.Sprintf("badge.job.failed"); got != "Misluk" {
		t.Fatalf("af-ZA badge.job.failed = %q, want %q", got, "Misluk")
	}
	if got := p.Sprintf("badge.trust_level.trusted"); got != "Trusted" {
		t.Fatalf("af-ZA untranslated key = %q, want base locale %q", got, "Trusted")
	}
	p = message.NewPrinter(language.Afrikaans)
	if got := p.Sprintf("embargo.days_left", 3); got != "3 dae oor" {
		t.Fatalf("af embargo.days_left = %q, want %q", got, "3 dae oor")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	value, ok := bundle.Message("af-ZA", "badge.trust_level.trusted")
	if !ok || value != "Trusted" {
		t.Fatalf("Message fallback = %q, %v; want Trusted", value, ok)
	}
	if _, ok := bundle.Message("af-ZA", " "); ok {
		t.Fatal("expected blank key miss")
	}
	if _, ok := bundle.Message(BaseLocale, "badge.job.50%"); ok {
		t.Fatal("expected unknown key miss")
	}
}

func TestTagsListsBaseLocaleFirst(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	tags := bundle.Tags()
	if len(tags) < 2 || tags[0] != language.MustParse(BaseLocale) {
		t.Fatalf("Tags = %v, want base locale first", tags)
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "core.bad": "nope"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "af-ZA"
namespace: "core"
messages:
  "core.a": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), "locale: [unterminated\n")

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/af-ZA/core.yaml"), `locale: "af-ZA"
namespace: "core"
messages:
  "core.a": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
