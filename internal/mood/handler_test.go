package mood

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lawford1337/mood/internal/storage"
	"github.com/gofiber/fiber/v2"
)

func makeMoodApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	service := NewService(storage.Open(filepath.Join(t.TempDir(), "data.json")))
	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)
	return app, service
}

func TestMoodDefaultsToMorning(t *testing.T) {
	app, _ := makeMoodApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/mood", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var m Mood
	if err := json.NewDecoder(res.Body).Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.ID != DefaultID {
		t.Fatalf("expected default mood %q, got %q", DefaultID, m.ID)
	}
}

func TestSelectMood(t *testing.T) {
	app, service := makeMoodApp(t)

	req := httptest.NewRequest("PUT", "/api/v1/mood", strings.NewReader(`{"mood":"focus"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if service.Active().ID != "focus" {
		t.Fatalf("selection not applied: %q", service.Active().ID)
	}

	// unrecognized mood is rejected and the selection stays put
	req2 := httptest.NewRequest("PUT", "/api/v1/mood", strings.NewReader(`{"mood":"sleepy"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mood, got %d", res2.StatusCode)
	}
	if service.Active().ID != "focus" {
		t.Fatalf("rejected selection mutated state: %q", service.Active().ID)
	}
}

func TestMoodSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	s := NewService(storage.Open(path))
	if _, err := s.Select("evening"); err != nil {
		t.Fatalf("select: %v", err)
	}

	s2 := NewService(storage.Open(path))
	if s2.Active().ID != "evening" {
		t.Fatalf("expected persisted 'evening', got %q", s2.Active().ID)
	}
}

func TestStaleStoredMoodFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	// a slot value from some older build that no longer names a mood
	if err := os.WriteFile(path, []byte(`{"activeMood": "\"midnight\""}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := NewService(storage.Open(path))
	if s.Active().ID != DefaultID {
		t.Fatalf("expected fallback to %q, got %q", DefaultID, s.Active().ID)
	}
}
