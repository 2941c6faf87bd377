package fountain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrEmptyInput marks input with nothing worth converting.
var ErrEmptyInput = errors.New("no convertible content")

type substitution struct {
	style      string
	forceBlank bool
}

// context sensitive style picks: some (previous, requested) pairs land on a
// variant style, mostly to fix spacing after the title page
var styleReplacements = map[[2]string]substitution{
	{"Title Line", "Action"}:        {"Action ATi", true},
	{"Title Line", "Centered"}:      {"Action ATi", true},
	{"Title Line", "Scene Heading"}: {"Scene Heading ATi", true},
	{"Transition", "Scene Heading"}: {"Scene Heading", true},
	{"Scene Heading", "Character"}:  {"Character", false},
}

// Writer turns fountain text lines into styled paragraphs. The style
// catalogue in the context must be populated and resolved before Process is
// called, paragraph spacing decisions depend on it.
type Writer struct {
	ctx *Context
	log *zap.Logger

	lines   []string
	linenr  int
	maxline int

	titles []Paragraph
	body   []Paragraph

	title          string
	style          string
	lastStyle      string
	lastTitleStyle string
	blank          bool
	lastBlank      bool
	blankPending   bool
	breakRequired  bool
}

func NewWriter(ctx *Context) *Writer {
	return &Writer{
		ctx:            ctx,
		log:            ctx.log,
		blank:          true,
		lastBlank:      true,
		lastTitleStyle: "Title Line",
	}
}

// Titles returns the title page paragraphs, possibly empty.
func (w *Writer) Titles() []Paragraph {
	return w.titles
}

// Body returns the script body paragraphs.
func (w *Writer) Body() []Paragraph {
	return w.body
}

// Title returns the document title from the title page, "" when the input
// had none.
func (w *Writer) Title() string {
	return w.title
}

// Process consumes the whole input, classifying every line and building the
// title and body paragraph lists.
func (w *Writer) Process(lines []string) error {
	if len(lines) < 2 {
		return ErrEmptyInput
	}
	w.lines = make([]string, len(lines))
	for i, line := range lines {
		w.lines[i] = strings.TrimRight(line, "\r\n")
	}
	w.maxline = len(w.lines)
	if strings.TrimRight(w.lines[w.maxline-1], " ") == "" {
		w.maxline--
	} else {
		// sentinel keeps single line lookahead in bounds
		w.lines = append(w.lines, "")
	}
	for w.linenr < w.maxline && strings.TrimSpace(w.lines[w.linenr]) == "" {
		w.linenr++
	}
	if w.linenr < w.maxline && strings.Contains(w.lines[w.linenr], ":") {
		w.processTitles()
	}
	for w.linenr < w.maxline {
		line := w.lines[w.linenr]
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			w.processBlank()
		case w.dispatchSigil(line):
		case strings.HasPrefix(line, "[["):
			w.noteBlock(line)
		case trimmed[0] == '(':
			w.addLine(trimmed, "Parenthetical", "", false)
		case (strings.HasPrefix(line, "INT. ") || strings.HasPrefix(line, "EXT. ")) &&
			strings.TrimSpace(w.lines[w.linenr+1]) == "":
			w.addLine(line, "Scene Heading", "", false)
		case w.lastBlank && line == strings.ToUpper(line) &&
			strings.TrimSpace(w.lines[w.linenr+1]) != "":
			if strings.HasSuffix(line, "TO:") {
				w.addLine(line, "Transition", "", false)
			} else {
				w.addLine(line, "Character", "", false)
			}
		case strings.HasPrefix(line, "==="):
			w.pageBreak()
		case w.lastStyle == "Character" || w.lastStyle == "Parenthetical" || w.lastStyle == "Notes":
			w.addLine(line, "Dialogue", "", true)
		default:
			w.addLine(line, "Action", "", false)
		}
		w.linenr++
		w.lastBlank = w.blank
		w.lastStyle = w.style
	}
	w.log.Debug("processed fountain input",
		zap.Int("lines", w.maxline), zap.Int("titles", len(w.titles)), zap.Int("paragraphs", len(w.body)))
	return nil
}

// dispatchSigil handles lines starting with a type forcing character,
// reporting whether the line was consumed.
func (w *Writer) dispatchSigil(line string) bool {
	switch line[0] {
	case '!':
		w.addLine(line[1:], "Action", "", false)
	case '@':
		w.addLine(line[1:], "Character", "", false)
	case '%':
		// non standard extension
		w.addLine(line[1:], "Dialogue", "", true)
	case '\'':
		// Romeo & Juliet is riddled with lines starting 'Tis
		w.addLine(line, "Dialogue", "", true)
	case '~':
		w.addLine(line[1:], "Lyrics", "Dialogue", false)
	case '(':
		w.addLine(line, "Parenthetical", "", false)
	case '.':
		w.addLine(line[1:], "Scene Heading", "", false)
	case '>':
		w.transitionOrCentred(line)
	default:
		return false
	}
	return true
}

func (w *Writer) encode(line, boundary string) []Span {
	if HasEmphasis(line) {
		return w.ctx.Encode(line, boundary)
	}
	return []Span{{Text: line}}
}

// addLine emits one body paragraph. The style may be swapped by the
// substitution table or by a pending page break, a pending blank line is
// materialized when the chosen style does not open with white space, and
// dialogue continuation lines are pulled in greedily when asked to.
func (w *Writer) addLine(line, style, fakeStyle string, mergeLines bool) {
	localStyle := style
	forceBlank := false
	if repl, ok := styleReplacements[[2]string{w.lastStyle, style}]; ok {
		localStyle = repl.style
		forceBlank = repl.forceBlank
	} else if w.breakRequired {
		localStyle += " PB"
	}
	w.breakRequired = false

	internal := InternalName(localStyle)
	info := w.ctx.Styles.Get(internal)
	if info == nil {
		w.log.Debug("unknown paragraph style", zap.String("style", localStyle))
		info = w.ctx.Styles.Get("Action")
	}
	if w.blankPending {
		if !info.SpaceBefore() {
			w.body = append(w.body, Paragraph{Spans: []Span{{Text: " "}}})
		}
		w.blankPending = false
	}
	w.body = append(w.body, Paragraph{StyleName: internal, Spans: w.encode(line, MarkerBoundary)})

	if fakeStyle != "" {
		w.style = fakeStyle
	} else {
		w.style = style
	}
	if forceBlank || info.SpaceAfter() {
		w.blank = true
	} else {
		w.blank = strings.TrimSpace(line) == ""
	}

	for mergeLines && w.linenr+1 < len(w.lines) {
		next := w.lines[w.linenr+1]
		if next == "" || !startsAlnum(next) {
			break
		}
		w.linenr++
		w.addLine(next, style, "", false)
	}
}

func startsAlnum(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (w *Writer) pageBreak() {
	w.breakRequired = true
	w.blank = true
	w.blankPending = false
}

func (w *Writer) processBlank() {
	w.blank = true
	w.blankPending = !w.lastBlank
}

// noteBlock handles "[[" lines: text alternates between note and dialogue at
// every "]]". A note with no terminator on the same line is passed through
// with an apology, multi-line notes are not supported.
func (w *Writer) noteBlock(line string) {
	line = line[2:]
	if strings.Contains(line, "]]") {
		style := "Notes"
		for _, part := range strings.Split(line, "]]") {
			if part != "" {
				w.addLine(part, style, "", false)
			}
			style = "Dialogue"
		}
	} else {
		w.addLine(line+"...  Not yet implemented", "Notes", "", false)
	}
	w.blank = false
}

// transitionOrCentred disambiguates ">" lines: trailing ":" means a
// transition, anything else is centered text.
func (w *Writer) transitionOrCentred(line string) {
	line = strings.TrimPrefix(line, ">")
	if strings.HasSuffix(line, ":") {
		w.addLine(line, "Transition", "", false)
	} else {
		w.addLine(strings.TrimRight(line, "<"), "Centered", "Action", false)
	}
}

// centered title page keys, everything else is left aligned
var centeredTitleKeys = map[string]bool{
	"title":   true,
	"credit":  true,
	"author":  true,
	"authors": true,
	"source":  true,
}

// processTitles consumes the title page up to the first blank line. The
// first line becomes the document title, "key: value" lines pick their own
// alignment and indented lines continue the previous key.
func (w *Writer) processTitles() {
	first := true
	line := ""
titles:
	for w.linenr < w.maxline {
		line = w.lines[w.linenr]
		if line == "" {
			break
		}
		switch {
		case first:
			if len(line) > 6 && line[:6] == "Title:" {
				line = strings.TrimSpace(line[6:])
			}
			w.title = strings.Trim(line, "_* \t")
			w.titles = append(w.titles, Paragraph{StyleName: "Title", Spans: []Span{{Text: w.title}}})
			w.lastTitleStyle = "Title Line Centered"
			first = false
		case strings.Contains(line, ":"):
			key, _, _ := strings.Cut(strings.TrimSpace(line), ":")
			if centeredTitleKeys[strings.ToLower(key)] {
				w.lastTitleStyle = "Title Line Centered"
			} else {
				w.lastTitleStyle = "Title Line"
			}
			var spans []Span
			if HasEmphasis(line) {
				spans = w.ctx.Encode(line, TitleMarkerBoundary)
			} else {
				spans = []Span{{Text: strings.TrimSpace(line)}}
			}
			w.titles = append(w.titles, Paragraph{StyleName: InternalName(w.lastTitleStyle), Spans: spans})
		case len(line) > 3 && (line[:3] == "   " || line[0] == '\t'):
			spans := append([]Span{{Tab: true}}, w.encode(strings.TrimSpace(line), TitleMarkerBoundary)...)
			w.titles = append(w.titles, Paragraph{StyleName: InternalName(w.lastTitleStyle), Spans: spans})
		default:
			break titles
		}
		w.linenr++
	}
	if line == "" {
		w.lastBlank = true
		w.linenr++
	}
	w.style = "Title Line"
	w.lastStyle = "Title Line"
	w.breakRequired = true
}
