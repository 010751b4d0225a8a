package vendors

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Minimal DOM helpers on top of golang.org/x/net/html. Every parser that
// needs structural fallbacks (label cell followed by value cell, label span
// followed by value span) goes through these two capabilities: find text
// nodes by pattern, and read the text of a following sibling.

// parseDOM parses an HTML document, tolerating the malformed markup embedded
// web UIs tend to serve. Returns nil if the tokenizer gives up entirely.
func parseDOM(content string) *html.Node {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}
	return doc
}

// walk visits every node in the tree in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// domTitle returns the trimmed text of the document's <title> element.
func domTitle(doc *html.Node) string {
	var title string
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			title = strings.TrimSpace(textContent(n))
			return false
		}
		return true
	})
	return title
}

// textContent concatenates all text beneath a node.
func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

// findLabelParents returns the parent elements of text nodes matching re.
// This is the "find element by label text" half of the DOM fallback used
// when class- and id-based patterns find nothing.
func findLabelParents(doc *html.Node, re *regexp.Regexp) []*html.Node {
	var parents []*html.Node
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.TextNode && re.MatchString(n.Data) && n.Parent != nil {
			parents = append(parents, n.Parent)
		}
		return true
	})
	return parents
}

// siblingText returns the trimmed text of the first non-blank sibling
// following n, whether that sibling is a bare text node or an element.
func siblingText(n *html.Node) string {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		var text string
		switch s.Type {
		case html.TextNode:
			text = strings.TrimSpace(s.Data)
		case html.ElementNode:
			text = strings.TrimSpace(textContent(s))
		}
		if text != "" {
			return text
		}
	}
	return ""
}

// siblingElementText returns the trimmed text of the next sibling element
// whose tag is one of names. Used for table label/value rows where the value
// lives in the following <td> or <span>.
func siblingElementText(n *html.Node, names ...string) string {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		for _, name := range names {
			if s.Data == name {
				return strings.TrimSpace(textContent(s))
			}
		}
	}
	return ""
}
