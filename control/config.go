// File: control/config.go
// Author: momentics <momentics@gmail.com>
//
// Stream configuration: JSON codec, validation, and a hot-reload store.
// The resolution code is already resolved by the driver layer and passes
// through the core untouched.

package control

import (
	"fmt"
	"os"
	"sync"

	"github.com/sugawarayuuta/sonnet"
)

// Config describes one stream channel.
type Config struct {
	// SampleRate in Hz paces device consumption.
	SampleRate int `json:"sample_rate"`
	// Samples per channel per buffer.
	Samples int `json:"samples"`
	// Channels per frame.
	Channels int `json:"channels"`
	// Buffers in the pool.
	Buffers int `json:"buffers"`
	// Resolution is the driver-resolved format code, opaque to the core.
	Resolution int `json:"resolution"`
}

// DefaultConfig returns a workable single-channel configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Samples:    256,
		Channels:   1,
		Buffers:    8,
	}
}

// Validate reports the first violated constraint.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("sample_rate must be positive: %d", c.SampleRate)
	case c.Samples <= 0:
		return fmt.Errorf("samples must be positive: %d", c.Samples)
	case c.Channels <= 0:
		return fmt.Errorf("channels must be positive: %d", c.Channels)
	case c.Buffers < 3:
		// Two hardware slots plus the lead buffer that prevents
		// starvation on the first completion.
		return fmt.Errorf("buffers must be at least 3: %d", c.Buffers)
	case c.Resolution < 0:
		return fmt.Errorf("resolution code must be non-negative: %d", c.Resolution)
	}
	return nil
}

// LoadConfig reads and validates a JSON config file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := sonnet.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as JSON.
func (c Config) Save(path string) error {
	raw, err := sonnet.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Store is a thread-safe config holder with reload listeners.
type Store struct {
	mu        sync.RWMutex
	cfg       Config
	listeners []func(Config)
}

// NewStore initializes a store with a validated config.
func NewStore(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{cfg: cfg}, nil
}

// Get returns the current config snapshot.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the config after validation and dispatches listeners.
func (s *Store) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	listeners := append([]func(Config){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// OnReload registers a listener called with each accepted update.
func (s *Store) OnReload(fn func(Config)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
