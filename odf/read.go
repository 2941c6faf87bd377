package odf

import (
	"archive/zip"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/juliaclement/screenwriting/fountain"
)

// Read opens an ODT container, loads every style it declares into the
// conversion context and returns the document paragraphs in order.
func Read(path string, ctx *fountain.Context, log *zap.Logger) ([]fountain.Paragraph, error) {
	log = log.Named("odf")
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document (%s): %w", path, err)
	}
	defer zr.Close()

	mimetype, err := readZipPart(&zr.Reader, partMimetype)
	if err != nil {
		return nil, err
	}
	if mt := strings.TrimSpace(string(mimetype)); mt != MimeTypeText && mt != MimeTypeTextTemplate {
		return nil, fmt.Errorf("unsupported document type %q", mt)
	}

	styles, err := parseZipXML(&zr.Reader, partStyles)
	if err != nil {
		return nil, err
	}
	loadStyles(styles.Root(), ctx, log)

	content, err := parseZipXML(&zr.Reader, partContent)
	if err != nil {
		return nil, err
	}
	// content carries additional automatic styles
	loadStyles(content.Root(), ctx, log)
	ctx.Styles.Resolve()

	body := findElement(content.Root(), "office", "text")
	if body == nil {
		return nil, fmt.Errorf("document (%s) has no text body", path)
	}
	var paragraphs []fountain.Paragraph
	collectParagraphs(body, &paragraphs)
	log.Debug("loaded document", zap.String("path", path),
		zap.Int("styles", ctx.Styles.Len()), zap.Int("paragraphs", len(paragraphs)))
	return paragraphs, nil
}

func readZipPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("unable to open document part %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("unable to read document part %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("document part %s is missing", name)
}

func parseZipXML(zr *zip.Reader, name string) (*etree.Document, error) {
	data, err := readZipPart(zr, name)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse document part %s: %w", name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("document part %s is empty", name)
	}
	return doc, nil
}

// loadStyles walks a parsed part and registers every style declaration.
func loadStyles(root *etree.Element, ctx *fountain.Context, log *zap.Logger) {
	walkElements(root, func(el *etree.Element) {
		if el.Space != "style" || el.Tag != "style" {
			return
		}
		if attrValue(el, "style", "family") == "text" {
			seedTextStyle(el, ctx)
			return
		}
		parseStyleElement(el, ctx)
	})
}

// seedTextStyle registers an automatic text style so the emphasis cache can
// reuse it instead of allocating duplicates.
func seedTextStyle(el *etree.Element, ctx *fountain.Context) {
	name := attrValue(el, "style", "name")
	if name == "" {
		return
	}
	var flags fountain.StyleFlags
	for _, props := range el.ChildElements() {
		if props.Tag != "text-properties" {
			continue
		}
		for _, a := range props.Attr {
			switch a.Key {
			case "font-weight":
				if a.Value == "bold" {
					flags |= fountain.FlagBold
				}
			case "font-style":
				if a.Value == "italic" {
					flags |= fountain.FlagItalic
				}
			case "text-underline-style":
				if a.Value == "solid" {
					flags |= fountain.FlagUnderline
				}
			}
		}
	}
	ctx.SeedEmphasisStyle(name, flags)
}

// parseStyleElement turns one style:style declaration into a catalogue
// entry. Measurements come back in points, unparsable ones are skipped.
func parseStyleElement(el *etree.Element, ctx *fountain.Context) *fountain.Style {
	name := attrValue(el, "style", "name")
	if name == "" {
		return nil
	}
	parent := attrValue(el, "style", "parent-style-name")
	s := ctx.Styles.NewStyle(name, parent)
	if dn := attrValue(el, "style", "display-name"); dn != "" {
		s.DisplayName = dn
	}
	for _, props := range el.ChildElements() {
		if props.Tag != "paragraph-properties" && props.Tag != "text-properties" {
			continue
		}
		for _, a := range props.Attr {
			applyStyleAttribute(s, a.Key, a.Value)
		}
	}
	return s
}

func applyStyleAttribute(s *fountain.Style, key, value string) {
	points := func() *float64 {
		v, err := fountain.ToPoints(value)
		if err != nil {
			return nil
		}
		return &v
	}
	switch key {
	case "margin-left":
		s.MarginLeft = points()
	case "margin-right":
		s.MarginRight = points()
	case "margin-top":
		s.MarginTop = points()
	case "margin-bottom":
		s.MarginBottom = points()
	case "text-transform":
		if value == "uppercase" {
			s.Uppercase = boolPtr(true)
		}
	case "text-align":
		if value == "end" {
			right := "right"
			s.Align = &right
		}
	case "font-style":
		if value == "italic" {
			s.Italic = boolPtr(true)
		}
	case "font-weight":
		if value == "bold" {
			s.Bold = boolPtr(true)
		}
	case "text-underline-style":
		if value == "solid" {
			s.Underline = boolPtr(true)
		}
	case "border":
		s.Border = &value
	case "border-line-width":
		s.BorderLineWidth = &value
	case "break-before":
		if value == "page" {
			s.BreakBefore = boolPtr(true)
			s.PageBreak = boolPtr(true)
		}
	case "break-after":
		if value == "page" {
			s.BreakAfter = boolPtr(true)
		}
	case "page-number":
		// an explicit page number implies a break
		if value != "auto" {
			s.PageBreak = boolPtr(true)
		}
	}
}

func boolPtr(v bool) *bool { return &v }

// collectParagraphs walks the text body in order, descending into sections.
func collectParagraphs(el *etree.Element, out *[]fountain.Paragraph) {
	for _, child := range el.ChildElements() {
		if child.Space == "text" && (child.Tag == "p" || child.Tag == "h") {
			*out = append(*out, fountain.Paragraph{
				StyleName: attrValue(child, "text", "style-name"),
				Spans:     parseInline(child),
			})
			continue
		}
		collectParagraphs(child, out)
	}
}

// parseInline maps paragraph content to spans: character data, styled spans,
// tabs and encoded space runs.
func parseInline(el *etree.Element) []fountain.Span {
	var spans []fountain.Span
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if t.Data != "" {
				spans = append(spans, fountain.Span{Text: t.Data})
			}
		case *etree.Element:
			if t.Space != "text" {
				continue
			}
			switch t.Tag {
			case "span":
				spans = append(spans, fountain.Span{
					StyleName: attrValue(t, "text", "style-name"),
					Children:  parseInline(t),
				})
			case "tab":
				spans = append(spans, fountain.Span{Tab: true})
			case "s":
				count := 1
				if c := attrValue(t, "text", "c"); c != "" {
					if n, err := strconv.Atoi(c); err == nil {
						count = n
					}
				}
				spans = append(spans, fountain.Span{Spaces: count})
			case "line-break":
				spans = append(spans, fountain.Span{Text: " "})
			}
		}
	}
	return spans
}
