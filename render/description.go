package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"

	meta "github.com/yuin/goldmark-meta"
)

// DescriptionHTML renders a tour description written in markdown. Bare
// URLs become links, and the optional YAML front matter (title, date
// overrides) is returned alongside the HTML fragment.
func DescriptionHTML(source []byte) (string, map[string]interface{}, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify, meta.Meta),
	)

	ctx := parser.NewContext()

	var buf bytes.Buffer
	if err := md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return "", nil, fmt.Errorf("render description: %w", err)
	}

	fragment, err := rewriteLinks(buf.String())
	if err != nil {
		return "", nil, err
	}

	return fragment, meta.Get(ctx), nil
}

// rewriteLinks makes external links open in a new tab.
func rewriteLinks(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse description HTML: %w", err)
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) == 0 || !isExternalLink(s.Nodes[0]) {
			return
		}

		s.SetAttr("target", "_blank")
		s.SetAttr("rel", "noopener")
	})

	return doc.Find("body").Html()
}

func isExternalLink(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}

		return strings.HasPrefix(attr.Val, "http://") || strings.HasPrefix(attr.Val, "https://")
	}

	return false
}
