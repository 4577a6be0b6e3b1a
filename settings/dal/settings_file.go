package dal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

const settingsFileMode = 0o600

// SettingsFile stores the checkout settings in a local YAML file. It is read
// on every Get so edits are picked up without a restart.
type SettingsFile struct {
	path string
	mu   sync.Mutex
}

func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{path: path}
}

// Get returns the stored settings. A missing file yields empty settings.
func (d *SettingsFile) Get(ctx context.Context) (*domain.Settings, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.Settings{}, nil
		}

		return nil, err
	}

	var s domain.Settings

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", d.path, err)
	}

	return &s, nil
}

// Save writes the settings to a temporary file and renames it over the target.
func (d *SettingsFile) Save(ctx context.Context, s *domain.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".settings-*.yaml")
	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Chmod(settingsFileMode); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), d.path)
}
