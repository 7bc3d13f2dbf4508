package pager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lumeerrors "github.com/lumeui/lume/pkg/errors"
)

func pages(ns ...int) []Token {
	tokens := make([]Token, 0, len(ns))
	for _, n := range ns {
		tokens = append(tokens, PageToken(n))
	}
	return tokens
}

func gap() Token { return GapToken() }

func TestBuildKnownSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		total      int
		active     int
		siblings   int
		boundaries int
		want       []Token
	}{
		{
			name:  "first page with right gap",
			total: 10, active: 1, siblings: 1, boundaries: 1,
			want: append(pages(1, 2, 3, 4, 5), gap(), PageToken(10)),
		},
		{
			name:  "everything fits",
			total: 5, active: 3, siblings: 1, boundaries: 1,
			want: pages(1, 2, 3, 4, 5),
		},
		{
			name:  "centered with both gaps",
			total: 20, active: 10, siblings: 2, boundaries: 2,
			want: append(append(append(pages(1, 2), gap()), append(pages(8, 9, 10, 11, 12), gap())...), pages(19, 20)...),
		},
		{
			name:  "zero total",
			total: 0, active: 3, siblings: 1, boundaries: 1,
			want: []Token{},
		},
		{
			name:  "single page",
			total: 1, active: 1, siblings: 0, boundaries: 0,
			want: pages(1),
		},
		{
			name:  "last page with left gap",
			total: 10, active: 10, siblings: 1, boundaries: 1,
			want: append(append(pages(1), gap()), pages(7, 8, 9, 10)...),
		},
		{
			name:  "zero siblings zero boundaries",
			total: 10, active: 5, siblings: 0, boundaries: 0,
			want: append(append([]Token{gap()}, pages(4, 5)...), gap()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Build(tt.total, tt.active, tt.siblings, tt.boundaries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildInsertsHiddenPredecessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		total      int
		active     int
		siblings   int
		boundaries int
		want       []Token
	}{
		{
			name:  "predecessor hidden by left gap",
			total: 10, active: 9, siblings: 0, boundaries: 1,
			want: append(append(pages(1), gap()), pages(8, 9, 10)...),
		},
		{
			name:  "predecessor hidden between two gaps",
			total: 10, active: 5, siblings: 0, boundaries: 1,
			want: append(append(append(pages(1), gap()), append(pages(4, 5), gap())...), PageToken(10)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Build(tt.total, tt.active, tt.siblings, tt.boundaries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRejectsNegativeInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		total      int
		active     int
		siblings   int
		boundaries int
	}{
		{name: "negative total", total: -1, active: 1, siblings: 1, boundaries: 1},
		{name: "negative siblings", total: 10, active: 1, siblings: -1, boundaries: 1},
		{name: "negative boundaries", total: 10, active: 1, siblings: 1, boundaries: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Build(tt.total, tt.active, tt.siblings, tt.boundaries)
			require.Error(t, err)
			assert.Nil(t, got)

			var argErr *lumeerrors.InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
		})
	}
}

func TestBuildOutOfRangeActivePassesThrough(t *testing.T) {
	t.Parallel()

	// active below range: the window math still yields a valid sequence
	// and no predecessor is inserted because active itself is absent.
	got, err := Build(10, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, append(pages(1, 2, 3, 4, 5), gap(), PageToken(10)), got)

	// active past the last page.
	got, err = Build(10, 15, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, append(append(pages(1), gap()), pages(7, 8, 9, 10)...), got)
}

func TestBuildNoGapWhenWindowCoversTotal(t *testing.T) {
	t.Parallel()

	// total exactly equal to the window is the edge where elision would
	// first become possible; the full contiguous range must still win.
	for _, tc := range []struct{ siblings, boundaries int }{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 3},
	} {
		window := 2*tc.siblings + 3 + 2*tc.boundaries
		for total := 0; total <= window; total++ {
			for active := 1; active <= total; active++ {
				got, err := Build(total, active, tc.siblings, tc.boundaries)
				require.NoError(t, err)
				require.Len(t, got, total)
				for i, tok := range got {
					require.Equal(t, PageToken(i+1), tok)
				}
			}
		}
	}
}

func TestBuildProperties(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 30; total++ {
		for siblings := 0; siblings <= 3; siblings++ {
			for boundaries := 0; boundaries <= 3; boundaries++ {
				for active := 0; active <= total+2; active++ {
					name := fmt.Sprintf("t%d_a%d_s%d_b%d", total, active, siblings, boundaries)
					tokens, err := Build(total, active, siblings, boundaries)
					require.NoError(t, err, name)

					seen := map[int]bool{}
					last := 0
					for _, tok := range tokens {
						if tok.Kind != KindPage {
							continue
						}
						require.GreaterOrEqual(t, tok.Page, 1, name)
						require.LessOrEqual(t, tok.Page, total, name)
						require.False(t, seen[tok.Page], name)
						require.Greater(t, tok.Page, last, name)
						seen[tok.Page] = true
						last = tok.Page
					}

					if active >= 2 && active <= total {
						require.True(t, seen[active-1], name)
					}

					again, err := Build(total, active, siblings, boundaries)
					require.NoError(t, err, name)
					require.Equal(t, tokens, again, name)
				}
			}
		}
	}
}

func TestControlsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		total  int
		active int
		want   Controls
	}{
		{
			name: "middle page", total: 10, active: 5,
			want: Controls{},
		},
		{
			name: "first page", total: 10, active: 1,
			want: Controls{FirstDisabled: true, PrevDisabled: true},
		},
		{
			name: "last page", total: 10, active: 10,
			want: Controls{NextDisabled: true, LastDisabled: true},
		},
		{
			name: "single page", total: 1, active: 1,
			want: Controls{FirstDisabled: true, PrevDisabled: true, NextDisabled: true, LastDisabled: true},
		},
		{
			name: "past the end", total: 10, active: 12,
			want: Controls{NextDisabled: true, LastDisabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ControlsFor(tt.total, tt.active))
		})
	}
}
