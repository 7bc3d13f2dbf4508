// Package pager computes which page numbers and gap markers a pagination
// control should display. The output is a flat token sequence that any
// rendering layer (HTML, terminal, JSON) can consume without modification.
package pager

import (
	lumeerrors "github.com/lumeui/lume/pkg/errors"
)

// Kind discriminates the two token shapes a range can contain.
type Kind int

const (
	// KindPage marks a clickable page number.
	KindPage Kind = iota
	// KindGap marks a non-interactive ellipsis standing in for elided pages.
	KindGap
)

// Token is one element of a pagination range. Page is meaningful only when
// Kind is KindPage.
type Token struct {
	Kind Kind
	Page int
}

// PageToken returns a page-number token.
func PageToken(n int) Token {
	return Token{Kind: KindPage, Page: n}
}

// GapToken returns an ellipsis token.
func GapToken() Token {
	return Token{Kind: KindGap}
}

// IsPage reports whether the token is a page number.
func (t Token) IsPage() bool {
	return t.Kind == KindPage
}

// Controls carries the enabled/disabled state of the jump and step controls
// that surround the page buttons.
type Controls struct {
	FirstDisabled bool
	PrevDisabled  bool
	NextDisabled  bool
	LastDisabled  bool
}

// ControlsFor derives control states from the total page count and the
// active page. First/previous are disabled on (or before) the first page,
// next/last on (or past) the last.
func ControlsFor(total, active int) Controls {
	atStart := active <= 1
	atEnd := active >= total
	return Controls{
		FirstDisabled: atStart,
		PrevDisabled:  atStart,
		NextDisabled:  atEnd,
		LastDisabled:  atEnd,
	}
}

// Build produces the ordered token sequence for a pagination control.
//
// total is the page count, active the selected page, siblings the number of
// pages shown on each side of active, and boundaries the number of pages
// always shown at each extreme. total, siblings and boundaries must be
// non-negative; active is passed through untouched, so callers that supply
// an out-of-range active page get the sequence the window arithmetic
// yields for it.
//
// When the full range fits (2*siblings + 3 + 2*boundaries >= total) the
// result is every page with no gaps. Otherwise gaps elide the middle on one
// or both sides, and the page immediately before active is re-inserted if
// elision would have hidden it, so the user can always step back one page.
func Build(total, active, siblings, boundaries int) ([]Token, error) {
	switch {
	case total < 0:
		return nil, lumeerrors.NewInvalidArgumentError("total", total, "must be non-negative")
	case siblings < 0:
		return nil, lumeerrors.NewInvalidArgumentError("siblings", siblings, "must be non-negative")
	case boundaries < 0:
		return nil, lumeerrors.NewInvalidArgumentError("boundaries", boundaries, "must be non-negative")
	}

	if total <= 0 {
		return []Token{}, nil
	}

	window := 2*siblings + 3 + 2*boundaries
	if window >= total {
		return ensurePredecessor(pageRange(1, total), active), nil
	}

	left := max(active-siblings, boundaries+1)
	right := min(active+siblings, total-boundaries)
	showLeftGap := left > boundaries+2
	showRightGap := right < total-boundaries-1

	var tokens []Token
	switch {
	case !showLeftGap && showRightGap:
		leftCount := 2*siblings + boundaries + 2
		tokens = pageRange(1, leftCount)
		tokens = append(tokens, GapToken())
		tokens = append(tokens, pageRange(total-boundaries+1, total)...)
	case showLeftGap && !showRightGap:
		rightCount := boundaries + 1 + 2*siblings
		tokens = pageRange(1, boundaries)
		tokens = append(tokens, GapToken())
		tokens = append(tokens, pageRange(total-rightCount+1, total)...)
	default:
		// Both gaps, or neither: the middle run absorbs whatever the
		// boundary runs leave uncovered, so the same assembly serves
		// both shapes.
		tokens = pageRange(1, boundaries)
		if showLeftGap {
			tokens = append(tokens, GapToken())
		}
		tokens = append(tokens, pageRange(left, right)...)
		if showRightGap {
			tokens = append(tokens, GapToken())
		}
		tokens = append(tokens, pageRange(total-boundaries+1, total)...)
	}

	return ensurePredecessor(tokens, active), nil
}

// pageRange returns Page tokens for start..stop inclusive; an inverted
// range yields an empty slice.
func pageRange(start, stop int) []Token {
	if start > stop {
		return []Token{}
	}
	tokens := make([]Token, 0, stop-start+1)
	for n := start; n <= stop; n++ {
		tokens = append(tokens, PageToken(n))
	}
	return tokens
}

// ensurePredecessor inserts Page(active-1) directly before the first
// occurrence of Page(active) when elision dropped it. The sequence is
// returned unchanged when active is the first page, when the predecessor
// already shows, or when active itself is absent.
func ensurePredecessor(tokens []Token, active int) []Token {
	if active == 1 {
		return tokens
	}

	activeAt := -1
	for i, tok := range tokens {
		if tok.Kind != KindPage {
			continue
		}
		if tok.Page == active-1 {
			return tokens
		}
		if tok.Page == active && activeAt == -1 {
			activeAt = i
		}
	}
	if activeAt == -1 {
		return tokens
	}

	out := make([]Token, 0, len(tokens)+1)
	out = append(out, tokens[:activeAt]...)
	out = append(out, PageToken(active-1))
	out = append(out, tokens[activeAt:]...)
	return out
}
