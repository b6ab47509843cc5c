package dto

import (
	"github.com/russross/blackfriday/v2"
)

// renderMarkdown turns the markdown stored in notes and alert bodies into HTML.
func renderMarkdown(source string) string {
	if source == "" {
		return ""
	}
	return string(blackfriday.Run([]byte(source)))
}
