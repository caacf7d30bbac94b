package model

// Page is a position within a paginated result set: the 1-based page number
// and the total number of pages.
type Page struct {
	Number   int `json:"number"`
	NumPages int `json:"numPages"`
}

func (p Page) PageNumber() int { return p.Number }

func (p Page) PageCount() int { return p.NumPages }
