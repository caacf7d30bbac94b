package pagination

import (
	"errors"
	"fmt"
)

// DefaultPagesToShow is the window size used when callers do not supply one.
const DefaultPagesToShow = 11

// ErrInvalidArgument reports a pages-to-show value that is not a positive
// integer.
var ErrInvalidArgument = errors.New("pagination: invalid argument")

// Window is the read-only view of the page links displayed around the current
// page. PagesBack and PagesForward are nil when there is no jump target.
type Window struct {
	FirstPage    int   `json:"first_page"`
	LastPage     int   `json:"last_page"`
	PagesShown   []int `json:"pages_shown"`
	PagesBack    *int  `json:"pages_back,omitempty"`
	PagesForward *int  `json:"pages_forward,omitempty"`
}

// HasBack reports whether a jump-back target exists.
func (w Window) HasBack() bool {
	return w.PagesBack != nil
}

// HasForward reports whether a jump-forward target exists.
func (w Window) HasForward() bool {
	return w.PagesForward != nil
}

// Calculate returns the pagination window for currentPage (1-based) out of
// numPages, showing roughly pagesToShow links.
func Calculate(currentPage, numPages, pagesToShow int) (Window, error) {
	if pagesToShow < 1 {
		return Window{}, fmt.Errorf("%w: pages to show should be a positive integer, got %d", ErrInvalidArgument, pagesToShow)
	}

	halfPageNum := pagesToShow/2 - 1
	if halfPageNum < 0 {
		halfPageNum = 0
	}

	firstPage := currentPage - halfPageNum
	if firstPage <= 1 {
		firstPage = 1
	}

	var pagesBack *int
	if firstPage > 1 {
		back := firstPage - halfPageNum
		if back < 1 {
			back = 1
		}
		pagesBack = &back
	}

	lastPage := firstPage + pagesToShow - 1
	if pagesBack == nil {
		lastPage++
	}
	if lastPage > numPages {
		lastPage = numPages
	}

	var pagesForward *int
	if lastPage < numPages {
		forward := lastPage + halfPageNum
		if forward > numPages {
			forward = numPages
		}
		pagesForward = &forward
	} else {
		// No room on the right: give one slot back on the left.
		if firstPage > 1 {
			firstPage--
		}
		if pagesBack != nil && *pagesBack > 1 {
			*pagesBack--
		} else {
			pagesBack = nil
		}
	}

	return Window{
		FirstPage:    firstPage,
		LastPage:     lastPage,
		PagesShown:   pageRange(firstPage, lastPage),
		PagesBack:    pagesBack,
		PagesForward: pagesForward,
	}, nil
}

func pageRange(first, last int) []int {
	if last < first {
		return []int{}
	}
	out := make([]int, 0, last-first+1)
	for page := first; page <= last; page++ {
		out = append(out, page)
	}
	return out
}
