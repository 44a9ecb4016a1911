package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/urlbar/internal/domain/entity"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 80, Height: 3}

	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(79, 2))
	assert.False(t, r.Contains(80, 2))
	assert.False(t, r.Contains(10, 3))
}

func TestFilterTouch_IgnoredInDisplayMode(t *testing.T) {
	tb := newTestBar(t, nil, DefaultOptions())
	tb.bar.SetBounds(Rect{Width: 80, Height: 3})

	assert.False(t, tb.bar.FilterTouch(entity.TouchPoint{X: 5, Y: 10, Phase: entity.TouchBegan}))
	assert.Empty(t, tb.sched.queue)
}

func TestFilterTouch_OutsideTapLeavesSearch(t *testing.T) {
	ctx := context.Background()
	tb := newTestBar(t, nil, DefaultOptions())
	tb.bar.SetBounds(Rect{Width: 80, Height: 3})
	tb.delegate.EXPECT().DidEnterSearchMode().Return().Once()
	tb.delegate.EXPECT().DidLeaveSearchMode(true).Return().Once()

	tb.bar.EnterSearch(ctx, "abc", false)
	tb.sched.flush()

	assert.False(t, tb.bar.FilterTouch(entity.TouchPoint{X: 5, Y: 1, Phase: entity.TouchBegan}), "inside the bar")
	assert.True(t, tb.bar.FilterTouch(entity.TouchPoint{X: 5, Y: 10, Phase: entity.TouchBegan}))
	assert.Equal(t, entity.ModeSearch, tb.bar.Mode(), "leave is deferred to the next tick")

	tb.sched.flush()
	assert.Equal(t, entity.ModeDisplay, tb.bar.Mode())
	assert.False(t, tb.bar.FilterTouch(entity.TouchPoint{X: 5, Y: 10, Phase: entity.TouchEnded}))
}
