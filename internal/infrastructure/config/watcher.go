package config

import (
	"context"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/urlbar/internal/logging"
)

type changeListener struct {
	id int
	fn func(*Config)
}

// Watch reloads the config whenever the file changes on disk and notifies
// listeners with the new value. It logs through the logger carried by ctx.
// Listeners run on the fsnotify goroutine.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	log := logging.FromContext(ctx)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Stringer("op", e.Op).Str("file", e.Name).Msg("config file changed")

		m.mu.Lock()
		if m.skipNextReload {
			// our own Save; the in-memory config is already current
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("resync after save failed")
			}
		} else if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("config reload rejected, keeping previous config")
			return
		}
		m.notifyLocked()
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange adds a listener and returns a func removing it.
func (m *Manager) OnConfigChange(fn func(*Config)) (unregister func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextListener++
	id := m.nextListener
	m.listeners = append(m.listeners, changeListener{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.listeners = slices.DeleteFunc(m.listeners, func(l changeListener) bool { return l.id == id })
	}
}

// notifyLocked releases m.mu before calling listeners with a snapshot.
func (m *Manager) notifyLocked() {
	cfg := m.config
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	for _, l := range listeners {
		l.fn(cfg)
	}
}

// reload requires m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}
