package pdf

import "strings"

// Run is a fragment of text sharing one style. A Text of "\n" is a line
// break.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// ParseRichText converts the constrained HTML subset produced by the
// estimate editor into styled runs.
//
// Recognized tags: <p>, <br>, <strong>/<b>, <em>/<i>, <u>. Closing a
// paragraph and <br> emit line breaks, style tags toggle flags, anything
// else is stripped. The input is editor output, not arbitrary HTML, so the
// scanner degrades gracefully instead of erroring: an unclosed style tag
// simply keeps its flag set to the end of the content, a lone '<' is kept
// as text.
func ParseRichText(s string) []Run {
	var (
		runs      []Run
		buf       strings.Builder
		bold      bool
		italic    bool
		underline bool
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: buf.String(), Bold: bold, Italic: italic, Underline: underline})
		buf.Reset()
	}
	lineBreak := func() {
		flush()
		runs = append(runs, Run{Text: "\n"})
	}

	for i := 0; i < len(s); {
		if s[i] != '<' {
			buf.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], '>')
		if end < 0 {
			// No closing '>', keep the rest as literal text.
			buf.WriteString(s[i:])
			break
		}
		tag := s[i+1 : i+end]
		i += end + 1

		name, closing := normalizeTag(tag)
		switch name {
		case "p":
			if closing {
				lineBreak()
			}
		case "br":
			lineBreak()
		case "strong", "b":
			flush()
			bold = !closing
		case "em", "i":
			flush()
			italic = !closing
		case "u":
			flush()
			underline = !closing
		default:
			// Unknown tag, stripped.
		}
	}
	flush()

	// A trailing </p> or <br> carries no content.
	for len(runs) > 0 && runs[len(runs)-1].Text == "\n" {
		runs = runs[:len(runs)-1]
	}
	for i := range runs {
		runs[i].Text = decodeEntities(runs[i].Text)
	}
	return runs
}

// PlainText flattens runs into an unstyled string, line breaks included.
func PlainText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func normalizeTag(tag string) (name string, closing bool) {
	tag = strings.TrimSpace(tag)
	if strings.HasPrefix(tag, "/") {
		closing = true
		tag = tag[1:]
	}
	tag = strings.TrimSuffix(tag, "/")
	// Drop attributes, the editor emits none we care about.
	if sp := strings.IndexAny(tag, " \t"); sp >= 0 {
		tag = tag[:sp]
	}
	return strings.ToLower(strings.TrimSpace(tag)), closing
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}
