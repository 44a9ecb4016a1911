package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlbar/internal/application/port"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
}

func TestManageTabsUseCase_CountsCurrentPrivacyMode(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(sequentialIDs(), nil)
	var provider port.TabCountProvider = uc

	uc.Open(ctx, "example.com")
	uc.Open(ctx, "")
	assert.Equal(t, 2, provider.TabCount())

	uc.SetPrivate(true)
	assert.Zero(t, provider.TabCount())

	tab := uc.Open(ctx, "")
	assert.True(t, tab.IsPrivate)
	assert.Equal(t, 1, provider.TabCount())

	uc.SetPrivate(false)
	assert.Equal(t, 2, provider.TabCount())
}

func TestManageTabsUseCase_OpenNormalizesURL(t *testing.T) {
	uc := NewManageTabsUseCase(sequentialIDs(), nil)

	tab := uc.Open(context.Background(), "example.com")

	assert.Equal(t, "https://example.com", tab.URL)
	assert.Equal(t, "https://example.com", uc.ActiveURL())
}

func TestManageTabsUseCase_CloseActive(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(sequentialIDs(), nil)

	assert.False(t, uc.CloseActive(ctx))

	uc.Open(ctx, "a.com")
	uc.Open(ctx, "b.com")
	require.True(t, uc.CloseActive(ctx))

	assert.Equal(t, 1, uc.TabCount())
	assert.Equal(t, "https://a.com", uc.ActiveURL())
}

func TestManageTabsUseCase_Navigate(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(sequentialIDs(), nil)

	assert.Nil(t, uc.Navigate(ctx, "https://x.org"))

	uc.Open(ctx, "")
	tab := uc.Navigate(ctx, "https://x.org")
	require.NotNil(t, tab)
	assert.Equal(t, "https://x.org", uc.ActiveURL())
}
