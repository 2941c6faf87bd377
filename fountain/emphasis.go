package fountain

import (
	"strings"
)

// Span is one inline run of paragraph content. Exactly one of the variants
// is meaningful: a tab, a run of spaces, a styled span wrapping children, or
// plain text.
type Span struct {
	Text      string
	StyleName string
	Tab       bool
	Spaces    int
	Children  []Span
}

func (s *Span) isText() bool {
	return s.StyleName == "" && !s.Tab && s.Spaces == 0
}

// Paragraph is one styled document paragraph.
type Paragraph struct {
	StyleName string // internal style name, empty for the default style
	Spans     []Span
}

// marker boundary sets: an opening marker only counts when preceded by one
// of these characters or standing at the start of the line
const (
	MarkerBoundary      = " \t"
	TitleMarkerBoundary = " :\t"
)

type marker struct {
	open  string
	close string
	flags StyleFlags
}

// checked in this exact order so longer marker sequences win over their
// shorter prefixes
var markers = []marker{
	{"_***", "***_", FlagUnderline | FlagBold | FlagItalic},
	{"***", "***", FlagBold | FlagItalic},
	{"_**", "**_", FlagUnderline | FlagBold},
	{"**", "**", FlagBold},
	{"*", "*", FlagItalic},
	{"_", "_", FlagUnderline},
}

// HasEmphasis is a cheap pre-test for lines that may carry markers.
func HasEmphasis(line string) bool {
	return strings.ContainsAny(line, "*_")
}

// Encode scans a line for emphasis markers and returns it as spans, marker
// pairs replaced by styled spans referencing shared automatic styles. A
// backslash before a marker suppresses it: the backslash is consumed and the
// marker character kept as literal text. A marker with no closing partner
// stays literal.
func (c *Context) Encode(line, boundary string) []Span {
	return c.encode([]Span{{Text: line}}, FlagNone, boundary, true)
}

func (c *Context) encode(nodes []Span, parent StyleFlags, boundary string, checkBoundary bool) []Span {
	for _, m := range markers {
		nodes = c.applyMarker(m, nodes, parent, boundary, checkBoundary)
	}
	return nodes
}

// emphasisRun builds the styled span for matched marker content, encoding the
// content recursively so weaker markers nest inside.
func (c *Context) emphasisRun(flags StyleFlags, children []Span) Span {
	return Span{
		StyleName: c.EmphasisStyle(flags).Name,
		Children:  children,
	}
}

func (c *Context) applyMarker(m marker, nodes []Span, parent StyleFlags, boundary string, checkBoundary bool) []Span {
	out := make([]Span, 0, len(nodes))
	pushText := func(t string) {
		if t == "" {
			return
		}
		if n := len(out); n > 0 && out[n-1].isText() {
			out[n-1].Text += t
			return
		}
		out = append(out, Span{Text: t})
	}
	openAllowed := func(text string, idx int) bool {
		if idx > 0 {
			return strings.ContainsAny(text[idx-1:idx], boundary)
		}
		n := len(out)
		if n == 0 {
			return true
		}
		last := &out[n-1]
		switch {
		case last.Tab, last.Spaces > 0:
			return true
		case last.isText():
			return strings.ContainsAny(last.Text[len(last.Text)-1:], boundary)
		default:
			return false
		}
	}

	queue := nodes
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if !node.isText() {
			out = append(out, node)
			continue
		}
		text := node.Text
	scan:
		for text != "" {
			idx := strings.Index(text, m.open)
			if idx < 0 {
				pushText(text)
				break
			}
			if idx > 0 && text[idx-1] == '\\' {
				// escaped: swallow the backslash, keep one marker character
				pushText(text[:idx-1] + text[idx:idx+1])
				text = text[idx+1:]
				continue
			}
			if checkBoundary && !openAllowed(text, idx) {
				pushText(text[:idx+len(m.open)])
				text = text[idx+len(m.open):]
				continue
			}
			flags := parent | m.flags
			rest := text[idx+len(m.open):]
			if cidx := strings.Index(rest, m.close); cidx >= 0 {
				if cidx == 0 {
					// an empty pair is debris left by a stronger marker
					// that never closed, keep the characters literal
					pushText(text[:idx+len(m.open)])
					text = text[idx+len(m.open):]
					continue
				}
				pushText(text[:idx])
				out = append(out, c.emphasisRun(flags,
					c.encode([]Span{{Text: rest[:cidx]}}, flags, boundary, false)))
				text = rest[cidx+len(m.close):]
				continue
			}
			// the closing marker may sit in a later text node, past spans
			// claimed by stronger markers
			for j := 0; j < len(queue); j++ {
				if !queue[j].isText() {
					continue
				}
				k := strings.Index(queue[j].Text, m.close)
				if k < 0 {
					continue
				}
				pushText(text[:idx])
				children := c.encode([]Span{{Text: rest}}, flags, boundary, false)
				for _, mid := range queue[:j] {
					if mid.isText() {
						children = append(children,
							c.encode([]Span{{Text: mid.Text}}, flags, boundary, false)...)
					} else {
						children = append(children, mid)
					}
				}
				children = append(children,
					c.encode([]Span{{Text: queue[j].Text[:k]}}, flags, boundary, false)...)
				out = append(out, c.emphasisRun(flags, children))
				text = queue[j].Text[k+len(m.close):]
				queue = queue[j+1:]
				continue scan
			}
			// unterminated, everything stays literal
			pushText(text)
			break
		}
	}
	return out
}

// FlattenSpans joins span text recursively, ignoring styling. Tabs and space
// runs come back as their characters.
func FlattenSpans(spans []Span) string {
	var sb strings.Builder
	flattenInto(&sb, spans)
	return sb.String()
}

func flattenInto(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch {
		case s.Tab:
			sb.WriteByte('\t')
		case s.Spaces > 0:
			sb.WriteString(strings.Repeat(" ", s.Spaces))
		default:
			flattenInto(sb, s.Children)
			sb.WriteString(s.Text)
		}
	}
}
