package richtext

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/estrys/fediprofile/internal/mastodon"
)

// PlainText renders status or bio HTML as text, one line per <br> and a blank line between paragraphs.
func PlainText(content string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(content), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return "", errors.Wrap(err, "unable to parse html")
	}

	var builder strings.Builder
	for i, node := range nodes {
		if i > 0 && isParagraph(node) {
			builder.WriteString("\n\n")
		}
		writeText(&builder, node)
	}
	return strings.TrimSpace(builder.String()), nil
}

func isParagraph(node *html.Node) bool {
	return node.Type == html.ElementNode && node.Data == "p"
}

func writeText(builder *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
		return
	case html.ElementNode:
		switch node.Data {
		case "br":
			builder.WriteString("\n")
			return
		case "script", "style":
			return
		}
		if hasClass(node, "invisible") {
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.PrevSibling != nil && isParagraph(child) {
			builder.WriteString("\n\n")
		}
		writeText(builder, child)
	}
	if hasClass(node, "ellipsis") {
		builder.WriteString("…")
	}
}

// hasClass matches the link shortening markup servers put around long URLs.
func hasClass(node *html.Node, class string) bool {
	for _, attr := range node.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, value := range strings.Fields(attr.Val) {
			if value == class {
				return true
			}
		}
	}
	return false
}

// BioText joins the bio and the profile fields the way a translation request sends them.
func BioText(note string, fields []mastodon.Field) (string, error) {
	blocks := make([]string, 0, len(fields)+1)
	text, err := PlainText(note)
	if err != nil {
		return "", err
	}
	if text != "" {
		blocks = append(blocks, text)
	}
	for _, field := range fields {
		value, err := PlainText(field.Value)
		if err != nil {
			return "", errors.Wrapf(err, "field %q", field.Name)
		}
		blocks = append(blocks, field.Name+"\n"+value)
	}
	return strings.Join(blocks, "\n\n"), nil
}

type NiceURL struct {
	Host string `json:"host"`
	Path string `json:"path"`
}

// SplitURL prepares a profile URL for display as its host and its path without surrounding slashes.
func SplitURL(rawURL string) (NiceURL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return NiceURL{}, errors.Wrapf(err, "invalid url %q", rawURL)
	}
	if parsed.Host == "" {
		return NiceURL{}, errors.Errorf("url %q has no host", rawURL)
	}
	return NiceURL{
		Host: parsed.Host,
		Path: strings.Trim(parsed.Path, "/"),
	}, nil
}
