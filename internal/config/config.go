package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// DefaultProfile is the profile used when none is named.
const DefaultProfile = "default"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileInvalid  = errors.New("profile is invalid")
)

// Profile is one named backend connection.
type Profile struct {
	// BaseURL is the backend root, e.g. http://127.0.0.1:8080.
	BaseURL string `yaml:"baseUrl"`
}

// Verify reports whether the profile is usable.
func (p *Profile) Verify() error {
	u, err := url.Parse(p.BaseURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: baseUrl is not an absolute URL: %s", ErrProfileInvalid, p.BaseURL)
	}
	return nil
}

// Profiles maps profile name to Profile.
type Profiles map[string]*Profile

// Resolve returns the named profile, or the default profile when name is
// empty.
func (ps Profiles) Resolve(name string) (*Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := ps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	return p, nil
}

// Path returns the profile file location under home.
func Path(home string) string {
	return filepath.Join(home, fileName)
}

// Load reads the profile file. A missing file is an empty profile set,
// not an error.
func Load(home string) (Profiles, error) {
	buf, err := os.ReadFile(Path(home))
	if err != nil {
		if os.IsNotExist(err) {
			return Profiles{}, nil
		}
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	ps := Profiles{}
	if err := yaml.Unmarshal(buf, &ps); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	return ps, nil
}

// Save writes the profile file with owner-only permissions, going through
// a temp file so a crash cannot leave a half-written config behind.
func Save(home string, ps Profiles) error {
	if err := os.MkdirAll(home, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	buf, err := yaml.Marshal(ps)
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	path := Path(home)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write profiles: %w", err)
	}
	return nil
}
