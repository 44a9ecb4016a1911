package usecase

import (
	"context"
	"sync"

	"github.com/bnema/urlbar/internal/domain/entity"
	"github.com/bnema/urlbar/internal/domain/url"
	"github.com/bnema/urlbar/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase owns the tab collection behind the tab count badge. Its
// TabCount implements port.TabCountProvider for the current privacy mode.
type ManageTabsUseCase struct {
	idGenerator IDGenerator

	mu      sync.RWMutex
	tabs    *entity.TabList
	private bool
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator, tabs *entity.TabList) *ManageTabsUseCase {
	if tabs == nil {
		tabs = entity.NewTabList()
	}
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
		tabs:        tabs,
	}
}

// Open adds a tab in the current privacy mode and makes it active.
func (uc *ManageTabsUseCase) Open(ctx context.Context, initialURL string) *entity.Tab {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tab := entity.NewTab(entity.TabID(uc.idGenerator()), url.Normalize(initialURL), uc.private)
	uc.tabs.Add(tab)
	uc.tabs.ActiveTabID = tab.ID

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tab.ID)).
		Bool("private", tab.IsPrivate).
		Int("count", uc.tabs.CountMatching(uc.private)).
		Msg("tab opened")
	return tab
}

// CloseActive closes the active tab. It returns false when there is none.
func (uc *ManageTabsUseCase) CloseActive(ctx context.Context) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	active := uc.tabs.ActiveTab()
	if active == nil {
		return false
	}
	uc.tabs.Remove(active.ID)

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(active.ID)).
		Int("count", uc.tabs.CountMatching(uc.private)).
		Msg("tab closed")
	return true
}

// Navigate sets the active tab's URL.
func (uc *ManageTabsUseCase) Navigate(ctx context.Context, rawURL string) *entity.Tab {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	active := uc.tabs.ActiveTab()
	if active == nil {
		return nil
	}
	active.URL = rawURL
	active.Title = ""
	logging.FromContext(ctx).Debug().Str("tab_id", string(active.ID)).Str("url", rawURL).Msg("tab navigated")
	return active
}

// SetPrivate switches between normal and private browsing.
func (uc *ManageTabsUseCase) SetPrivate(private bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.private = private
}

// Private reports whether private browsing is active.
func (uc *ManageTabsUseCase) Private() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.private
}

// TabCount returns the number of tabs in the current privacy mode.
func (uc *ManageTabsUseCase) TabCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.tabs.CountMatching(uc.private)
}

// ActiveURL returns the active tab's URL.
func (uc *ManageTabsUseCase) ActiveURL() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if active := uc.tabs.ActiveTab(); active != nil {
		return active.URL
	}
	return ""
}
