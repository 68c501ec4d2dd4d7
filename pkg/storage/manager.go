package storage

import (
	"fmt"
	"sync"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/config"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
)

var (
	managerMu     sync.RWMutex
	drivers       = map[string]Blobs{}
	defaultDriver string
)

// Connect boots the storage manager. Call once at application startup.
func Connect() {
	defaultDriver = config.StorageDriver()

	managerMu.Lock()
	drivers["memory"] = NewMemory()
	drivers["local"] = newLocal()
	managerMu.Unlock()

	if config.StorageS3Bucket() != "" {
		d, err := newS3()
		if err != nil {
			// Snapshots fall back to the default driver; the store itself
			// already tolerates a missing snapshot.
			logger.Warn("storage: s3 driver disabled", "error", err)
		} else {
			Register("s3", d)
		}
	}

	if defaultDriver == "redis" {
		d, err := newRedis()
		if err != nil {
			logger.Warn("storage: redis driver unreachable, using local", "error", err)
			defaultDriver = "local"
		} else {
			Register("redis", d)
		}
	}
}

// Use returns the named driver.
func Use(name string) Blobs {
	managerMu.RLock()
	d, ok := drivers[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: driver %q is not configured", name))
	}
	return d
}

// Register plugs in a custom Blobs implementation (used by tests).
func Register(name string, d Blobs) {
	managerMu.Lock()
	drivers[name] = d
	managerMu.Unlock()
}

// Default returns the driver selected by STORAGE_DRIVER.
func Default() Blobs { return Use(defaultDriver) }

// Put writes a blob on the default driver.
func Put(name string, content []byte) error { return Default().Put(name, content) }

// Get reads a blob from the default driver.
func Get(name string) ([]byte, error) { return Default().Get(name) }

// Exists reports whether a blob exists on the default driver.
func Exists(name string) bool { return Default().Exists(name) }

// Delete removes a blob from the default driver.
func Delete(name string) error { return Default().Delete(name) }

// List returns blob names under prefix on the default driver.
func List(prefix string) ([]string, error) { return Default().List(prefix) }
