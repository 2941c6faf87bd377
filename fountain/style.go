package fountain

import (
	"strings"

	"go.uber.org/zap"
)

// styles every word processor provides, roots of the parent graph
var baseStyleNames = map[string]bool{
	"Standard":           true,
	"Script_20_Elements": true,
	"Heading":            true,
}

// spaceThresholdPt is the margin above which a style visually separates
// itself from its neighbour as if a blank line preceded or followed it.
const spaceThresholdPt = 5.0

// Style is a named formatting and semantic descriptor for a document
// paragraph or text style. Attributes are tri-state: nil means "not set
// here", resolution fills gaps in from the parent chain.
type Style struct {
	Name        string // internal form, spaces encoded as _20_
	DisplayName string
	ParentName  string

	Rule *Rule

	Bold            *bool
	Italic          *bool
	Underline       *bool
	Uppercase       *bool
	Align           *string
	Border          *string
	BorderLineWidth *string
	MarginLeft      *float64
	MarginRight     *float64
	MarginTop       *float64
	MarginBottom    *float64
	BreakBefore     *bool
	BreakAfter      *bool
	PageBreak       *bool
	Title           *bool

	parent         *Style
	baseParent     *Style
	baseParentName string
	isBase         bool
	loaded         bool
}

func ptr[T any](v T) *T { return &v }

// coalesce returns the first non-nil value.
func coalesce[T any](vals ...*T) *T {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

// InternalName converts a display style name to the form used inside office
// documents, where a space becomes "_20_".
func InternalName(name string) string {
	return strings.ReplaceAll(name, " ", "_20_")
}

// StyleDisplayName is the inverse of InternalName.
func StyleDisplayName(name string) string {
	return strings.ReplaceAll(name, "_20_", " ")
}

func (s *Style) IsBold() bool      { return s != nil && s.Bold != nil && *s.Bold }
func (s *Style) IsItalic() bool    { return s != nil && s.Italic != nil && *s.Italic }
func (s *Style) IsUnderline() bool { return s != nil && s.Underline != nil && *s.Underline }
func (s *Style) IsUppercase() bool { return s != nil && s.Uppercase != nil && *s.Uppercase }
func (s *Style) IsTitle() bool     { return s != nil && s.Title != nil && *s.Title }
func (s *Style) IsPageBreak() bool { return s != nil && s.PageBreak != nil && *s.PageBreak }

func (s *Style) marginLeft() float64 {
	if s == nil || s.MarginLeft == nil {
		return 0
	}
	return *s.MarginLeft
}

// SpaceBefore reports whether the style visually opens with white space, from
// an explicit break or a top margin past the threshold.
func (s *Style) SpaceBefore() bool {
	if s == nil {
		return false
	}
	if s.BreakBefore != nil && *s.BreakBefore {
		return true
	}
	return s.MarginTop != nil && *s.MarginTop > spaceThresholdPt
}

// SpaceAfter is the closing counterpart of SpaceBefore.
func (s *Style) SpaceAfter() bool {
	if s == nil {
		return false
	}
	if s.BreakAfter != nil && *s.BreakAfter {
		return true
	}
	return s.MarginBottom != nil && *s.MarginBottom > spaceThresholdPt
}

// Flags reduces the style to its inline emphasis bits.
func (s *Style) Flags() StyleFlags {
	var f StyleFlags
	if s.IsUnderline() {
		f |= FlagUnderline
	}
	if s.IsItalic() {
		f |= FlagItalic
	}
	if s.IsBold() {
		f |= FlagBold
	}
	return f
}

func (s *Style) inheritFromParent() {
	p := s.parent
	s.loaded = true
	if s.Rule == nil {
		s.Rule = p.Rule
	}
	s.Italic = coalesce(s.Italic, p.Italic)
	s.Bold = coalesce(s.Bold, p.Bold)
	s.Underline = coalesce(s.Underline, p.Underline)
	s.Uppercase = coalesce(s.Uppercase, p.Uppercase)
	s.Align = coalesce(s.Align, p.Align)
	s.BorderLineWidth = coalesce(s.BorderLineWidth, p.BorderLineWidth)
	s.Border = coalesce(s.Border, p.Border)
	s.MarginLeft = coalesce(s.MarginLeft, p.MarginLeft)
	s.MarginRight = coalesce(s.MarginRight, p.MarginRight)
	s.MarginTop = coalesce(s.MarginTop, p.MarginTop)
	s.MarginBottom = coalesce(s.MarginBottom, p.MarginBottom)
	s.PageBreak = coalesce(s.PageBreak, p.PageBreak)
	s.BreakBefore = coalesce(s.BreakBefore, p.BreakBefore)
	s.BreakAfter = coalesce(s.BreakAfter, p.BreakAfter)
	s.Title = coalesce(s.Title, p.Title)
}

func (s *Style) assignParent(p *Style) {
	s.parent = p
	if s.baseParent == nil {
		s.baseParent = p.baseParent
		if s.baseParent == nil && p.isBase {
			s.baseParent = p
		}
	}
}

// Catalog is the working set of styles for one conversion, indexed by
// internal name and remembering declaration order.
type Catalog struct {
	rules  *Rules
	log    *zap.Logger
	byName map[string]*Style
	order  []*Style
}

func NewCatalog(rules *Rules, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		rules:  rules,
		log:    log,
		byName: make(map[string]*Style),
	}
}

// Get returns a style by internal name, nil when unknown.
func (c *Catalog) Get(name string) *Style {
	return c.byName[name]
}

// Has reports whether the catalogue already holds the named style.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// All returns styles in declaration order.
func (c *Catalog) All() []*Style {
	return c.order
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// NewStyle creates and registers a style. An existing style of the same name
// is replaced, latest declaration wins.
func (c *Catalog) NewStyle(name, parentName string) *Style {
	if parentName == "" {
		parentName = "Standard"
	}
	s := &Style{
		Name:           name,
		DisplayName:    StyleDisplayName(name),
		ParentName:     parentName,
		baseParentName: parentName,
		Rule:           c.rules.ForStyle(name),
	}
	if strings.Contains(strings.ToUpper(name), "TITLE") {
		s.Title = ptr(true)
	}
	if baseStyleNames[name] {
		s.isBase = true
		s.loaded = true
		s.baseParent = s
		s.Italic = ptr(false)
		s.Uppercase = ptr(false)
		s.Align = ptr("left")
		s.Border = ptr("0.1pt double #000000")
		s.BorderLineWidth = ptr("0cm")
		s.PageBreak = ptr(false)
		s.Title = ptr(false)
		if s.Rule == nil {
			s.Rule = c.rules.Null()
		}
	} else if p := c.byName[parentName]; p != nil {
		s.assignParent(p)
	}
	c.Add(s)
	return s
}

// Add registers an externally built style, replacing any same-name entry.
func (c *Catalog) Add(s *Style) {
	if old, ok := c.byName[s.Name]; ok {
		for i, o := range c.order {
			if o == old {
				c.order[i] = s
				break
			}
		}
	} else {
		c.order = append(c.order, s)
	}
	c.byName[s.Name] = s
}

// resolver passes are bounded, real documents converge in a handful
const maxResolvePasses = 64

// Resolve walks the possibly incomplete, unordered parent graph to a fixed
// point. First every style is chained up to a base ancestor, then unset
// attributes are filled in from parents. Styles whose parents never turn up
// keep their own values; calling Resolve again is harmless.
func (c *Catalog) Resolve() {
	c.resolveBaseParents()
	c.resolveAttributes()
}

func (c *Catalog) resolveBaseParents() {
	var pending []*Style
	for _, s := range c.order {
		if !s.isBase && (s.baseParent == nil || !s.baseParent.isBase) {
			pending = append(pending, s)
		}
	}
	for pass := 0; len(pending) > 0; pass++ {
		if pass >= maxResolvePasses {
			c.log.Warn("style parent graph did not converge", zap.Int("unresolved", len(pending)))
			return
		}
		var next []*Style
		progress := false
		for _, s := range pending {
			if s.parent == nil {
				if p := c.byName[s.ParentName]; p != nil {
					s.assignParent(p)
					if s.Rule == nil {
						s.Rule = p.Rule
					}
					progress = true
				}
			}
			bp := c.byName[s.baseParentName]
			if bp == nil {
				// dangling parent name, tolerated
				next = append(next, s)
				continue
			}
			if bp.baseParent != nil && s.baseParent != bp.baseParent {
				s.baseParent = bp.baseParent
				progress = true
			}
			if s.baseParentName != bp.baseParentName {
				s.baseParentName = bp.baseParentName
				progress = true
			}
			if s.baseParent == nil || !s.baseParent.isBase {
				next = append(next, s)
			}
		}
		if !progress {
			return
		}
		pending = next
	}
}

func (c *Catalog) resolveAttributes() {
	var pending []*Style
	for _, s := range c.order {
		if !s.loaded {
			pending = append(pending, s)
		}
	}
	for pass := 0; len(pending) > 0; pass++ {
		if pass >= maxResolvePasses {
			c.log.Warn("style attribute propagation did not converge", zap.Int("unresolved", len(pending)))
			return
		}
		var next []*Style
		progress := false
		for _, s := range pending {
			if s.parent == nil {
				if p := c.byName[s.ParentName]; p != nil {
					s.assignParent(p)
				}
			}
			if s.parent != nil && s.parent.loaded {
				s.inheritFromParent()
				progress = true
				continue
			}
			next = append(next, s)
		}
		if !progress {
			return
		}
		pending = next
	}
}
