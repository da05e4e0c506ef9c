package resp

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	externalAttr = "data-folio-external"
	externalPath = "/catch/external"
)

var (
	closingBody   = []byte("</body>")
	taskbarMarker = []byte(`id="folio_taskbar" data-folio-taskbar`)
)

// introduceTaskbar inserts markup immediately before the last closing body tag of content.
//
// content is returned unchanged if it already carries a taskbar
// or has no closing body tag.
func introduceTaskbar(content, markup []byte) []byte {
	if bytes.Contains(content, taskbarMarker) {
		return content
	}

	i := lastIndexFold(content, closingBody)
	if i < 0 {
		return content
	}

	out := make([]byte, 0, len(content)+len(markup))
	out = append(out, content[:i]...)
	out = append(out, markup...)
	out = append(out, content[i:]...)

	return out
}

// injectExternalLinksBlocker points every anchor leaving the server
// at the confirmation page under root, keeping the original target in the source parameter.
//
// Relative links and links with schemes other than http and https are left alone.
// Everything other than the rewritten anchors is copied byte for byte.
func injectExternalLinksBlocker(content []byte, root string) ([]byte, error) {
	z := html.NewTokenizer(bytes.NewReader(content))

	var out bytes.Buffer
	out.Grow(len(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return out.Bytes(), nil
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			// Token lowercases the tag in place, so keep the raw bytes first.
			raw := append([]byte(nil), z.Raw()...)
			tok := z.Token()
			if tok.DataAtom == atom.A && blockAnchor(&tok, root) {
				out.WriteString(tok.String())
				continue
			}
			out.Write(raw)

		default:
			out.Write(z.Raw())
		}
	}
}

// blockAnchor rewrites tok if its href leaves the server, reporting whether it did.
func blockAnchor(tok *html.Token, root string) bool {
	href := -1
	for i, attr := range tok.Attr {
		if attr.Namespace != "" {
			continue
		}

		switch attr.Key {
		case externalAttr:
			return false
		case "href":
			href = i
		}
	}

	if href < 0 || !isExternal(tok.Attr[href].Val) {
		return false
	}

	source := url.Values{"source": {tok.Attr[href].Val}}
	tok.Attr[href].Val = root + externalPath + "?" + source.Encode()
	tok.Attr = append(tok.Attr, html.Attribute{Key: externalAttr})

	return true
}

func isExternal(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return u.Host != ""
	default:
		return false
	}
}

// lastIndexFold is bytes.LastIndex ignoring ASCII case.
func lastIndexFold(s, sep []byte) int {
	for i := len(s) - len(sep); i >= 0; i-- {
		if bytes.EqualFold(s[i:i+len(sep)], sep) {
			return i
		}
	}

	return -1
}
