package fountain

import (
	"slices"
	"strings"

	"go.uber.org/zap"
)

// ReaderOptions control fountain rendering in the read direction.
type ReaderOptions struct {
	// always start lines with type forcing characters instead of relying on
	// translator heuristics
	ForceTypes bool
	// enable extra forcing characters most translators do not know
	ExtendedFountain bool
}

type documentState int

const (
	stateStarting documentState = iota
	stateTitles
	stateBody
)

// requireBefore placeholder chains in the rule set are one level deep, a
// deeper recursion means the tables are broken
const maxPartDepth = 4

// Reader renders styled document paragraphs back into fountain text. Feed
// paragraphs in document order, then collect Titles and Body.
type Reader struct {
	ctx  *Context
	opts ReaderOptions
	log  *zap.Logger

	state         documentState
	titles        []string
	body          []string
	lastLineBlank bool
	lastRule      *Rule
	lastCharacter string
	current       *Style
}

func NewReader(ctx *Context, opts ReaderOptions) *Reader {
	if opts.ExtendedFountain {
		ctx.Rules.EnableExtendedDialogue()
	}
	return &Reader{
		ctx:      ctx,
		opts:     opts,
		log:      ctx.log,
		lastRule: ctx.Rules.Null(),
	}
}

// Titles returns the accumulated title page lines.
func (r *Reader) Titles() []string {
	return r.titles
}

// Body returns the accumulated script body lines.
func (r *Reader) Body() []string {
	return r.body
}

// Text assembles the final fountain output.
func (r *Reader) Text() string {
	var sb strings.Builder
	if len(r.titles) > 0 {
		sb.WriteString(strings.Join(r.titles, "\n"))
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Join(r.body, "\n"))
	sb.WriteByte('\n')
	return sb.String()
}

// Paragraph consumes the next document paragraph. A paragraph with an
// unknown or missing style keeps the previous paragraph's style.
func (r *Reader) Paragraph(p Paragraph) {
	if style := r.ctx.Styles.Get(p.StyleName); style != nil {
		r.current = style
	}
	line := r.extractText(p.Spans)
	if r.current.IsUppercase() {
		line = strings.ToUpper(line)
	}

	if r.current.IsTitle() {
		r.state = stateTitles
	} else if r.current.IsPageBreak() {
		if r.state == stateStarting {
			r.state = stateBody
		}
		if r.state == stateTitles {
			r.state = stateBody
		} else if r.state == stateBody && len(r.body) > 0 {
			r.body = append(r.body, "===")
		}
	}

	if line == "" {
		if r.state != stateStarting {
			r.state = stateBody
		}
		return
	}
	if r.state == stateStarting {
		r.state = stateTitles
	}
	if r.state == stateTitles {
		// the title keyword may be missing when the style itself says title
		switch {
		case line[0] == '\t' || line[0] == ' ' || r.current.marginLeft() > 25.0:
			line = "    " + strings.Trim(line, " \t")
		case strings.Contains(line, ":"):
			line = strings.Trim(line, " \t")
		default:
			line = "Title: " + strings.Trim(line, " \t")
		}
	}
	if r.state == stateBody {
		rule := r.ctx.Rules.Null()
		if r.current != nil && r.current.Rule != nil {
			rule = r.current.Rule
		}
		r.renderPart(rule, line, 0)
	} else {
		r.outputText(line)
	}
}

// renderPart emits one body line. Recursive as some types need to follow
// other specific types and a placeholder is synthesized when they do not.
func (r *Reader) renderPart(rule *Rule, line string, depth int) {
	if depth >= maxPartDepth {
		r.log.Warn("predecessor chain too deep", zap.String("rule", rule.Name))
		return
	}
	if rule.Type == TypeCharacter {
		line = strings.TrimSpace(line)
		if line == "" {
			line = r.lastCharacter
		} else {
			r.lastCharacter = line
		}
	}
	if (r.opts.ForceTypes || rule.AlwaysRequired) && !strings.HasPrefix(line, rule.Prefix) {
		line = rule.Prefix + strings.TrimSpace(line) + rule.Suffix
	}
	if len(rule.RequireBefore) > 0 && !slices.Contains(rule.RequireBefore, r.lastRule.Type) {
		r.renderPart(r.ctx.Rules.ForType(rule.RequireBefore[0]), "", depth+1)
	}
	if rule.BlankBefore && !r.lastLineBlank {
		r.outputText("")
	}
	r.lastRule = rule
	r.outputText(line)
	if rule.BlankAfter {
		r.outputText("")
	}
}

func (r *Reader) outputText(line string) {
	r.lastLineBlank = strings.TrimSpace(line) == ""
	if r.state == stateBody {
		r.body = append(r.body, line)
	} else {
		r.titles = append(r.titles, line)
	}
}

// extractText renders spans to plain text, wrapping styled spans in their
// emphasis markers. A separating space is inserted when a styled span glues
// directly onto the preceding character.
func (r *Reader) extractText(spans []Span) string {
	var sb strings.Builder
	r.extractInto(&sb, spans)
	return sb.String()
}

func (r *Reader) extractInto(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch {
		case s.Tab:
			sb.WriteByte('\t')
		case s.Spaces > 0:
			sb.WriteString(strings.Repeat(" ", s.Spaces))
		case s.StyleName != "":
			style := r.ctx.Styles.Get(s.StyleName)
			var open, close string
			if style != nil {
				open, close = style.Flags().Markers()
			}
			if open != "" {
				if sofar := sb.String(); sofar != "" && !strings.HasSuffix(sofar, " ") {
					sb.WriteByte(' ')
				}
			}
			sb.WriteString(open)
			r.extractInto(sb, s.Children)
			sb.WriteString(s.Text)
			sb.WriteString(close)
		default:
			sb.WriteString(s.Text)
		}
	}
}
