package fetch

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// PageTitle returns the <title> text of an HTML document, or "" when there is none.
func PageTitle(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}

// Snippet returns at most n runes of the trimmed body.
func Snippet(body []byte, n int) string {
	s := strings.TrimSpace(string(body))
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}
