package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
)

// local stores blobs as files under a root directory.
type local struct {
	root string
}

func newLocal() *local {
	root := config.StorageLocalRoot()
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &local{root: root}
}

func (d *local) abs(name string) string {
	return filepath.Join(d.root, filepath.FromSlash(name))
}

func (d *local) Put(name string, content []byte) error {
	full := d.abs(name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", name, err)
	}
	return nil
}

func (d *local) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage/local: get %s: %w", name, err)
	}
	return data, nil
}

func (d *local) Exists(name string) bool {
	_, err := os.Stat(d.abs(name))
	return err == nil
}

func (d *local) Delete(name string) error {
	err := os.Remove(d.abs(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", name, err)
	}
	return nil
}

func (d *local) List(prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage/local: list %s: %w", prefix, err)
	}
	return names, nil
}
