package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

const localeFixture = `site:
  name: "Manantial de Vida"
  description: "Iglesia Manantial de Vida"
nav:
  home: "Inicio"
  about: "Acerca de"
  services: "Servicios"
  contact: "Contacto"
  live: "En Vivo"
events:
  untitled: "Sin título"
  recurring_title: "Actividades Semanales"
  upcoming_title: "Próximos Eventos"
  no_events: "No hay eventos programados"
`

func writeLocale(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write locale fixture: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "es.yml", localeFixture)

	bundle, err := Load(dir, "es")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	locale := bundle.Get("es")
	if locale.Code != "es" {
		t.Errorf("Code should derive from filename, got '%s'", locale.Code)
	}
	if locale.Site.Name != "Manantial de Vida" {
		t.Errorf("Unexpected site name: '%s'", locale.Site.Name)
	}
	if locale.Events.Untitled != "Sin título" {
		t.Errorf("Unexpected untitled placeholder: '%s'", locale.Events.Untitled)
	}
}

func TestLoad_FallbackForUnknownCode(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "es.yml", localeFixture)

	bundle, err := Load(dir, "es")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	locale := bundle.Get("fr")
	if locale == nil || locale.Code != "es" {
		t.Error("Unknown code should fall back to the default locale")
	}
}

func TestLoad_MissingFallbackFails(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en.yml", localeFixture)

	if _, err := Load(dir, "es"); err == nil {
		t.Error("Load should fail when the fallback locale is absent")
	}
}

func TestLoad_RequiresUntitledPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "es.yml", "site:\n  name: Test\n")

	if _, err := Load(dir, "es"); err == nil {
		t.Error("Load should reject a locale without events.untitled")
	}
}
