package resp

import (
	"bytes"
	"compress/gzip"
	"mime"
	"strconv"
	"strings"
)

var compressibleTypes = map[string]bool{
	"application/javascript": true,
	"application/json":       true,
	"application/xml":        true,
	"image/svg+xml":          true,
}

// isCompressible reports whether content of mimeType is worth gzipping.
func isCompressible(mimeType string) bool {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mt, "text/") ||
		compressibleTypes[mt] ||
		strings.HasSuffix(mt, "+xml") ||
		strings.HasSuffix(mt, "+json")
}

// isHTML reports whether mimeType names an HTML document.
func isHTML(mimeType string) bool {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return false
	}

	return mt == "text/html" || mt == "application/xhtml+xml"
}

// acceptsGzip reports whether an Accept-Encoding header value admits gzip.
// An explicit q=0 refuses it.
func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "gzip" && name != "*" {
			continue
		}

		q := 1.0
		for _, param := range strings.Split(params, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}

			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				parsed = 0
			}
			q = parsed
		}

		if q > 0 {
			return true
		}
	}

	return false
}

func gzipBytes(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
