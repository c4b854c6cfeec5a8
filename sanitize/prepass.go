package sanitize

import (
	htmlpkg "html"
	"strings"

	"github.com/rinsehq/rinse/policy"
	"golang.org/x/net/html"
)

// applyTagPolicy rewrites value so that disallowed elements are either
// removed together with their subtree (StripUnknownTagBodies) or
// escaped into visible text (StripUnknownTags false). Allowed elements
// pass through with their attributes intact; attribute filtering is
// left to the primitive. A parse failure degrades to the fallback
// strip rather than returning the input.
func applyTagPolicy(value string, p policy.Policy) string {
	doc, err := html.Parse(strings.NewReader(value))
	if err != nil {
		return fallbackStrip(value)
	}

	var b strings.Builder
	body := findBody(doc)
	if body == nil {
		return fallbackStrip(value)
	}

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&b, c, p)
	}

	return b.String()
}

func renderNode(b *strings.Builder, n *html.Node, p policy.Policy) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(htmlpkg.EscapeString(n.Data))

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if p.Allows(tag) {
			writeOpenTag(b, tag, n)
			if isVoidElement(tag) {
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				renderNode(b, c, p)
			}
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')
			return
		}

		if p.StripUnknownTagBodies {
			return
		}

		if !p.StripUnknownTags {
			b.WriteString(htmlpkg.EscapeString(openTagText(tag, n)))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c, p)
		}
		if !p.StripUnknownTags && !isVoidElement(tag) {
			b.WriteString(htmlpkg.EscapeString("</" + tag + ">"))
		}

	case html.CommentNode, html.DoctypeNode:
		// dropped

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c, p)
		}
	}
}

func writeOpenTag(b *strings.Builder, tag string, n *html.Node) {
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(htmlpkg.EscapeString(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}

func openTagText(tag string, n *html.Node) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}
