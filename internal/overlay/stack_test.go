package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(s *Stack) []Category {
	var out []Category
	for _, e := range s.Hidden() {
		out = append(out, e.Category)
	}
	if v, ok := s.Visible(); ok {
		out = append(out, v.Category)
	}
	return out
}

func build(cats ...Category) *Stack {
	s := NewStack()
	for _, c := range cats {
		s.Show(c, Text(string(c)))
	}
	return s
}

func TestStack_ShowPushesVisible(t *testing.T) {
	t.Parallel()

	s := NewStack()
	assert.False(t, s.Shown())

	s.Show(Waiting, Text("waiting"))
	s.Show(Alert, Text("boom"))

	v, ok := s.Visible()
	require.True(t, ok)
	assert.Equal(t, Alert, v.Category)
	assert.Equal(t, "boom", v.Content.Render(80))
	assert.Equal(t, []Category{Waiting, Alert}, categories(s))
	assert.True(t, s.Shown())
	assert.Equal(t, 2, s.Len())
}

func TestStack_Dismiss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stack    []Category // bottom to top, last is visible
		category Category
		all      bool
		want     []Category
	}{
		{
			name:     "visible match promotes top hidden",
			stack:    []Category{Waiting, Alert},
			category: Alert,
			want:     []Category{Waiting},
		},
		{
			name:     "nearest hidden match removed when visible differs",
			stack:    []Category{Paused, Waiting, Paused, Alert},
			category: Paused,
			want:     []Category{Paused, Waiting, Alert},
		},
		{
			name:     "all removes visible and every hidden match",
			stack:    []Category{Paused, Waiting, Paused, Paused},
			category: Paused,
			all:      true,
			want:     []Category{Waiting},
		},
		{
			name:     "all with non-matching visible",
			stack:    []Category{Error, Waiting, Error, Help},
			category: Error,
			all:      true,
			want:     []Category{Waiting, Help},
		},
		{
			name:     "single visible match leaves repeat underneath",
			stack:    []Category{Alert, Alert},
			category: Alert,
			want:     []Category{Alert},
		},
		{
			name:     "absent category is a no-op",
			stack:    []Category{Waiting, Alert},
			category: Error,
			all:      true,
			want:     []Category{Waiting, Alert},
		},
		{
			name:     "last entry hides the container",
			stack:    []Category{Help},
			category: Help,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := build(tt.stack...)
			s.Dismiss(tt.category, tt.all)
			assert.Equal(t, tt.want, categories(s))
			assert.Equal(t, len(tt.want) > 0, s.Shown())
		})
	}
}

func TestStack_DismissAllCategoryLeavesNone(t *testing.T) {
	t.Parallel()

	all := []Category{Alert, Help, Paused, Waiting, Ended, Error}
	// Every ordering prefix of a mixed stack.
	base := []Category{Waiting, Alert, Paused, Alert, Error, Alert, Help, Paused}
	for _, target := range all {
		s := build(base...)
		s.DismissEvery(target)
		assert.False(t, s.Contains(target), "category %s must be gone", target)
		for _, c := range categories(s) {
			assert.NotEqual(t, target, c)
		}
	}
}

func TestStack_ShowThenDismissRestores(t *testing.T) {
	t.Parallel()

	s := build(Waiting, Paused, Error)
	before := categories(s)

	s.Show(Alert, Text("new"))
	s.DismissNearest(Alert)

	assert.Equal(t, before, categories(s))
}

func TestStack_DismissAll(t *testing.T) {
	t.Parallel()

	s := build(Waiting, Paused, Alert)
	s.DismissAll()

	_, ok := s.Visible()
	assert.False(t, ok)
	assert.Empty(t, s.Hidden())
	assert.False(t, s.Shown())
	assert.Zero(t, s.Len())
}

func TestStack_HiddenIsCopy(t *testing.T) {
	t.Parallel()

	s := build(Waiting, Alert)
	h := s.Hidden()
	h[0].Category = Error
	assert.True(t, s.Contains(Waiting))
	assert.True(t, s.IsVisible(Alert))
	assert.False(t, s.IsVisible(Waiting))
}
