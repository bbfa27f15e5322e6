// ABOUTME: HTML utilities for turning provider snippets into plain text
// ABOUTME: NewsAPI content and some GNews descriptions carry markup and entities

package html

import (
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

// truncationMarker matches NewsAPI's "… [+1234 chars]" suffix on content fields
var truncationMarker = regexp.MustCompile(`\s*\[\+\d+ chars\]\s*$`)

// StripHTML removes tags, drops script/style bodies, decodes entities and
// collapses whitespace. Plain text passes through with whitespace normalized.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return collapseSpaces(s)
	}

	var b strings.Builder
	skip := 0
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return collapseSpaces(b.String())
		case xhtml.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
			b.WriteByte(' ')
		case xhtml.EndTagToken:
			if isRawTextTag(z) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case xhtml.SelfClosingTagToken:
			b.WriteByte(' ')
		case xhtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// TrimTruncationMarker removes NewsAPI's trailing "[+N chars]" marker
func TrimTruncationMarker(s string) string {
	return truncationMarker.ReplaceAllString(s, "")
}

func isRawTextTag(z *xhtml.Tokenizer) bool {
	name, _ := z.TagName()
	tag := string(name)
	return tag == "script" || tag == "style"
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
