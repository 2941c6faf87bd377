package fountain

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// StyleFlags is a bitmask of inline emphasis attributes.
type StyleFlags uint8

const (
	FlagNone      StyleFlags = 0
	FlagUnderline StyleFlags = 1
	FlagItalic    StyleFlags = 2
	FlagBold      StyleFlags = 4
)

// Markers reconstructs the opening and closing marker pair for a flag
// combination. Underline wraps outermost, then bold, then italic, so bold
// italic underline renders as "_***text***_".
func (f StyleFlags) Markers() (open, close string) {
	if f&FlagUnderline != 0 {
		open, close = "_", "_"
	}
	if f&FlagBold != 0 {
		open += "**"
		close = "**" + close
	}
	if f&FlagItalic != 0 {
		open += "*"
		close = "*" + close
	}
	return open, close
}

// Context carries all per-conversion state: rule tables, the style catalogue,
// the emphasis style cache and the automatic style counter. Construct one per
// input file, nothing here is safe for concurrent use.
type Context struct {
	Rules  *Rules
	Styles *Catalog

	log       *zap.Logger
	emphasis  map[StyleFlags]*Style
	created   []*Style
	autoStyle int
}

func NewContext(log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("fountain")
	rules := NewRules()
	return &Context{
		Rules:    rules,
		Styles:   NewCatalog(rules, log),
		log:      log,
		emphasis: make(map[StyleFlags]*Style),
	}
}

func (c *Context) Log() *zap.Logger {
	return c.log
}

func emphasisStyle(name string, flags StyleFlags) *Style {
	s := &Style{Name: name, DisplayName: name, loaded: true}
	if flags&FlagBold != 0 {
		s.Bold = ptr(true)
	}
	if flags&FlagItalic != 0 {
		s.Italic = ptr(true)
	}
	if flags&FlagUnderline != 0 {
		s.Underline = ptr(true)
	}
	return s
}

// SeedEmphasisStyle registers a pre-existing automatic text style, usually
// lifted from a document template, so later lookups reuse it instead of
// allocating a duplicate. Numeric "T<n>" names advance the allocation
// counter past n.
func (c *Context) SeedEmphasisStyle(name string, flags StyleFlags) {
	s := emphasisStyle(name, flags)
	c.Styles.Add(s)
	if _, ok := c.emphasis[flags]; !ok && flags != FlagNone {
		c.emphasis[flags] = s
	}
	if rest, ok := strings.CutPrefix(name, "T"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n > c.autoStyle {
			c.autoStyle = n
		}
	}
}

// EmphasisStyle returns the automatic text style for a flag combination,
// allocating a fresh "T<n>" style on first use. Equal flag combinations
// always share one style.
func (c *Context) EmphasisStyle(flags StyleFlags) *Style {
	if s, ok := c.emphasis[flags]; ok {
		return s
	}
	c.autoStyle++
	s := emphasisStyle("T"+strconv.Itoa(c.autoStyle), flags)
	c.Styles.Add(s)
	c.emphasis[flags] = s
	c.created = append(c.created, s)
	return s
}

// CreatedStyles lists automatic text styles allocated during this run, in
// allocation order. Seeded styles are not included.
func (c *Context) CreatedStyles() []*Style {
	return c.created
}
