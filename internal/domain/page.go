package domain

// PageSize is the fixed number of items returned per page by paginated lists.
const PageSize = 10

// Page selects a 1-indexed slice of an ordered list.
// The zero Page means "no pagination": the whole list is returned.
type Page struct {
	Number int
	Size   int
}

// NewPage returns the page with the given 1-indexed number and the default
// page size. Returns ErrInvalidPage when number is lower than one.
func NewPage(number int) (Page, error) {
	if number < 1 {
		return Page{}, ErrInvalidPage
	}
	return Page{Number: number, Size: PageSize}, nil
}

// IsZero reports whether the page requests the whole list.
func (p Page) IsZero() bool {
	return p.Number == 0
}

// Offset returns the number of items preceding the page.
func (p Page) Offset() int {
	if p.IsZero() {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of items on the page, or -1 for the
// zero Page.
func (p Page) Limit() int {
	if p.IsZero() {
		return -1
	}
	return p.Size
}

// Slice applies the page to an in-memory, already ordered list.
func Slice[T any](items []T, p Page) []T {
	if p.IsZero() {
		return items
	}
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
