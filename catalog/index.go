package catalog

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// index extracts the searchable text of every HTML entry in fsys, sorted by path.
func index(fsys fs.FS) ([]doc, error) {
	docs := make([]doc, 0)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !isHTMLPath(p) {
			return nil
		}

		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		title, text, err := extractText(b)
		if err != nil {
			return err
		}

		if title == "" {
			title = strings.TrimSuffix(path.Base(p), path.Ext(p))
		}

		docs = append(docs, doc{path: p, title: title, text: text, words: len(strings.Fields(text))})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func isHTMLPath(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

// extractText returns the title of an HTML document and its visible body text,
// with runs of whitespace collapsed.
func extractText(b []byte) (string, string, error) {
	z := html.NewTokenizer(bytes.NewReader(b))

	var (
		title, text strings.Builder
		inTitle     bool
		skip        int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return strings.Join(strings.Fields(title.String()), " "),
					strings.Join(strings.Fields(text.String()), " "),
					nil
			}
			return "", "", z.Err()

		case html.StartTagToken:
			switch atom.Lookup(tagName(z)) {
			case atom.Title:
				inTitle = true
			case atom.Script, atom.Style:
				skip++
			}

		case html.EndTagToken:
			switch atom.Lookup(tagName(z)) {
			case atom.Title:
				inTitle = false
			case atom.Script, atom.Style:
				skip = max(0, skip-1)
			}

		case html.TextToken:
			switch {
			case inTitle:
				title.Write(z.Text())
			case skip == 0:
				text.Write(z.Text())
				text.WriteByte(' ')
			}
		}
	}
}

func tagName(z *html.Tokenizer) []byte {
	name, _ := z.TagName()
	return name
}
