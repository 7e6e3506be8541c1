// Package document abstracts the rendered admin page as a tree of nodes that
// can be queried by id, CSS selector or relative child path. A live browser
// session and a parsed HTML snapshot both satisfy Node.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("node not found")

type Node interface {
	// Find returns the first descendant matching the locator or an error
	// wrapping ErrNotFound.
	Find(ctx context.Context, locator Locator) (Node, error)
	// FindAll returns all matches in document order, possibly none.
	FindAll(ctx context.Context, locator Locator) ([]Node, error)
	Attr(ctx context.Context, name string) (value string, ok bool, err error)
	// Text returns the inner markup if markup is set, the rendered text otherwise.
	Text(ctx context.Context, markup bool) (string, error)
}

type LocatorKind int

const (
	ByID LocatorKind = iota
	ByCSS
	ByPath
)

// Last selects the last matching child in a path step.
const Last = -1

type Step struct {
	Tag string
	// Index is 1-based, or Last.
	Index int
}

type Locator struct {
	Kind  LocatorKind
	Value string
	Steps []Step
}

func ID(id string) Locator {
	return Locator{Kind: ByID, Value: id}
}

func CSS(selector string) Locator {
	return Locator{Kind: ByCSS, Value: selector}
}

// Path addresses direct children relative to the node, like ./div[1]/span[last()].
func Path(steps ...Step) Locator {
	return Locator{Kind: ByPath, Steps: steps}
}

func Child(tag string, index int) Step {
	return Step{Tag: tag, Index: index}
}

// String renders the locator in the form a WebDriver would accept:
// "#id", a CSS selector or a relative XPath.
func (l Locator) String() string {
	switch l.Kind {
	case ByID:
		return "#" + l.Value
	case ByCSS:
		return l.Value
	case ByPath:
		var sb strings.Builder
		sb.WriteString(".")
		for _, step := range l.Steps {
			if step.Index == Last {
				fmt.Fprintf(&sb, "/%s[last()]", step.Tag)
			} else {
				fmt.Fprintf(&sb, "/%s[%d]", step.Tag, step.Index)
			}
		}
		return sb.String()
	}
	return fmt.Sprintf("invalid locator kind %d", l.Kind)
}
