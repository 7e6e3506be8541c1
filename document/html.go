package document

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type htmlNode struct {
	selection *goquery.Selection
}

// Parse reads an HTML snapshot of a page.
func Parse(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing html: %w", err)
	}
	return &htmlNode{selection: doc.Selection}, nil
}

func ParseString(html string) (Node, error) {
	return Parse(strings.NewReader(html))
}

func (n *htmlNode) Find(ctx context.Context, locator Locator) (Node, error) {
	nodes, err := n.FindAll(ctx, locator)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", locator, ErrNotFound)
	}
	return nodes[0], nil
}

func (n *htmlNode) FindAll(ctx context.Context, locator Locator) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var selection *goquery.Selection
	switch locator.Kind {
	case ByID:
		compiled, err := idSelector(locator.Value)
		if err != nil {
			return nil, err
		}
		selection = n.selection.FindMatcher(compiled)
	case ByCSS:
		compiled, err := compile(locator.Value)
		if err != nil {
			return nil, err
		}
		selection = n.selection.FindMatcher(compiled)
	case ByPath:
		if len(locator.Steps) == 0 {
			return nil, fmt.Errorf("empty path locator")
		}
		selection = n.selection
		for _, step := range locator.Steps {
			selection = selectStep(selection, step)
		}
	default:
		return nil, fmt.Errorf("unsupported locator kind %d", locator.Kind)
	}

	nodes := make([]Node, 0, selection.Length())
	selection.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &htmlNode{selection: s})
	})
	return nodes, nil
}

func selectStep(selection *goquery.Selection, step Step) *goquery.Selection {
	var result *goquery.Selection
	// ./div[1] picks the first div child of every context node
	selection.Each(func(_ int, s *goquery.Selection) {
		children := s.ChildrenFiltered(step.Tag)
		var picked *goquery.Selection
		switch {
		case step.Index == Last:
			picked = children.Last()
		case step.Index < 1:
			picked = children.Slice(0, 0)
		default:
			picked = children.Eq(step.Index - 1)
		}
		if result == nil {
			result = picked
		} else {
			result = result.AddSelection(picked)
		}
	})
	if result == nil {
		return selection.Slice(0, 0)
	}
	return result
}

func (n *htmlNode) Attr(ctx context.Context, name string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	value, ok := n.selection.Attr(name)
	return value, ok, nil
}

func (n *htmlNode) Text(ctx context.Context, markup bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if markup {
		return n.selection.Html()
	}
	return n.selection.Text(), nil
}
