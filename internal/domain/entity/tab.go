package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// Tab represents a browser tab as seen by the toolbar.
type Tab struct {
	ID        TabID
	URL       string
	Title     string
	IsPrivate bool
	Position  int // Position in the tab tray (0-indexed)
	CreatedAt time.Time
}

// NewTab creates a new tab.
func NewTab(id TabID, url string, private bool) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		IsPrivate: private,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the title, falling back to URL or "New Tab".
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.URL != "" {
		return t.URL
	}
	return "New Tab"
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID != id {
			continue
		}
		tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
		for j := i; j < len(tl.Tabs); j++ {
			tl.Tabs[j].Position = j
		}
		if tl.ActiveTabID == id {
			switch {
			case len(tl.Tabs) == 0:
				tl.ActiveTabID = ""
			case i < len(tl.Tabs):
				tl.ActiveTabID = tl.Tabs[i].ID
			default:
				tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
			}
		}
		return true
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// CountMatching returns the number of tabs in the given privacy mode.
func (tl *TabList) CountMatching(private bool) int {
	n := 0
	for _, tab := range tl.Tabs {
		if tab.IsPrivate == private {
			n++
		}
	}
	return n
}

// Move moves a tab to a new position.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	oldPos := -1
	for i, t := range tl.Tabs {
		if t.ID == id {
			oldPos = i
			break
		}
	}
	if oldPos < 0 {
		return false
	}
	tab := tl.Tabs[oldPos]
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	for i := range tl.Tabs {
		tl.Tabs[i].Position = i
	}
	return true
}
