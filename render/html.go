package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/pdfoutline/model"
)

// HTML writes the outline as a <nav> element: the title in an <h1> and the
// entries as ordered lists nested by heading level, each linking to its page.
func HTML(w io.Writer, result *model.Result) error {
	if err := html.Render(w, navNode(normalize(result))); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// listLevel is an open <ol> and the heading level of its items
type listLevel struct {
	level model.Level
	list  *html.Node
}

// navNode builds the navigation tree. A deeper entry opens a list inside the
// previous item; a shallower one closes lists until its level is reached.
func navNode(result *model.Result) *html.Node {
	nav := element(atom.Nav)

	if result.Title != "" {
		h1 := element(atom.H1)
		h1.AppendChild(text(result.Title))
		nav.AppendChild(h1)
	}

	if len(result.Outline) == 0 {
		return nav
	}

	root := element(atom.Ol)
	nav.AppendChild(root)
	stack := []listLevel{{level: result.Outline[0].Level, list: root}}

	for _, entry := range result.Outline {
		for len(stack) > 1 && stack[len(stack)-1].level > entry.Level {
			stack = stack[:len(stack)-1]
		}

		top := stack[len(stack)-1]
		if entry.Level > top.level && top.list.LastChild != nil {
			nested := element(atom.Ol)
			top.list.LastChild.AppendChild(nested)
			top = listLevel{level: entry.Level, list: nested}
			stack = append(stack, top)
		}

		top.list.AppendChild(item(entry))
	}

	return nav
}

// item builds <li><a href="#page=N">text</a></li>
func item(entry model.OutlineEntry) *html.Node {
	a := element(atom.A)
	a.Attr = []html.Attribute{{Key: "href", Val: fmt.Sprintf("#page=%d", entry.Page)}}
	a.AppendChild(text(entry.Text))

	li := element(atom.Li)
	li.AppendChild(a)
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
