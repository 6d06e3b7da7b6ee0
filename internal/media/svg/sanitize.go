package svg

import (
	"bytes"
	"errors"
	"regexp"
)

var (
	scriptTagPattern  = regexp.MustCompile(`(?is)<\s*script[\s>].*?<\s*/\s*script\s*>`)
	eventAttrPattern  = regexp.MustCompile(`(?is)\son[a-z]+\s*=\s*("[^"]*"|'[^']*')`)
	scriptHrefPattern = regexp.MustCompile(`(?is)\s(?:xlink:)?href\s*=\s*("javascript:[^"]*"|'javascript:[^']*')`)
)

// Sanitize strips script tags and inline event handlers. SVG posters are
// served from a public bucket, so stored markup must be inert.
func Sanitize(input []byte) ([]byte, error) {
	if !bytes.Contains(bytes.ToLower(input), []byte("<svg")) {
		return nil, errors.New("not an svg document")
	}

	clean := scriptTagPattern.ReplaceAll(input, nil)
	clean = eventAttrPattern.ReplaceAll(clean, nil)
	clean = scriptHrefPattern.ReplaceAll(clean, nil)

	return clean, nil
}
