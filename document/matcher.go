package document

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

func compile(selector string) (cascadia.Selector, error) {
	compiled, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	return compiled, nil
}

// idSelector matches on the id attribute, the router reuses ids like
// data_row on every row of a table.
func idSelector(id string) (cascadia.Selector, error) {
	return compile(fmt.Sprintf("[id=%q]", id))
}
