package config_test

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"ledgerdesk/internal/config"
)

func TestLoadMissingFile(t *testing.T) {
	ps, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ps) != 0 {
		t.Errorf("len(profiles) = %d, want 0", len(ps))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	in := config.Profiles{
		"default": {BaseURL: "http://127.0.0.1:8080"},
		"staging": {BaseURL: "https://staging.example.com"},
	}
	if err := config.Save(home, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(profiles) = %d, want 2", len(out))
	}
	if out["staging"].BaseURL != "https://staging.example.com" {
		t.Errorf("staging baseUrl = %q", out["staging"].BaseURL)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(config.Path(home))
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("perm = %o, want 600", perm)
		}
	}
}

func TestResolve(t *testing.T) {
	ps := config.Profiles{
		"default": {BaseURL: "http://127.0.0.1:8080"},
		"broken":  {BaseURL: "not a url"},
	}

	p, err := ps.Resolve("")
	if err != nil {
		t.Fatalf("Resolve(default): %v", err)
	}
	if p.BaseURL != "http://127.0.0.1:8080" {
		t.Errorf("BaseURL = %q", p.BaseURL)
	}

	if _, err := ps.Resolve("missing"); !errors.Is(err, config.ErrProfileNotFound) {
		t.Errorf("Resolve(missing) = %v, want ErrProfileNotFound", err)
	}
	if _, err := ps.Resolve("broken"); !errors.Is(err, config.ErrProfileInvalid) {
		t.Errorf("Resolve(broken) = %v, want ErrProfileInvalid", err)
	}
}
