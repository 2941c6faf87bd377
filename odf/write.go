package odf

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/renameio"
	"go.uber.org/zap"

	"github.com/juliaclement/screenwriting/config"
	"github.com/juliaclement/screenwriting/fountain"
	"github.com/juliaclement/screenwriting/misc"
)

// Document assembles one output ODT. New prepares the style catalogue so the
// paragraph engine can make spacing decisions, Save packages the result.
type Document struct {
	ctx      *fountain.Context
	log      *zap.Logger
	template string

	styles   *etree.Document
	settings *etree.Document
	manifest *etree.Document
	autoText []*etree.Element
	insert   []*etree.Element
}

// New prepares a document, from a template container when templatePath is
// set or from the built-in skeleton otherwise. Template styles are loaded
// into the conversion context and missing screenplay styles are scheduled
// for insertion, all of them when force is set.
func New(ctx *fountain.Context, templatePath string, force bool, log *zap.Logger) (*Document, error) {
	d := &Document{ctx: ctx, log: log.Named("odf"), template: templatePath}
	if templatePath != "" {
		if err := d.loadTemplate(templatePath); err != nil {
			return nil, err
		}
	} else {
		d.styles = etree.NewDocument()
		if err := d.styles.ReadFromString(stylesSkeleton); err != nil {
			return nil, fmt.Errorf("unable to parse styles skeleton: %w", err)
		}
		loadStyles(d.styles.Root(), ctx, log)
	}
	if d.settings == nil {
		d.settings = etree.NewDocument()
		if err := d.settings.ReadFromString(settingsSkeleton); err != nil {
			return nil, fmt.Errorf("unable to parse settings skeleton: %w", err)
		}
	}

	for _, tmpl := range scriptStyleTemplates {
		if !force && ctx.Styles.Has(tmpl.name) {
			continue
		}
		el, err := parseStyleTemplate(tmpl.xml)
		if err != nil {
			return nil, fmt.Errorf("bad built-in style %s: %w", tmpl.name, err)
		}
		parseStyleElement(el, ctx)
		d.insert = append(d.insert, el)
	}
	ctx.Styles.Resolve()
	return d, nil
}

func parseStyleTemplate(xml string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("no element in style template")
	}
	return doc.Root().Copy(), nil
}

func setAttr(el *etree.Element, key, value string) {
	el.RemoveAttr(key)
	el.CreateAttr(key, value)
}

// Save packages the document parts around the produced paragraphs and
// writes the container atomically.
func (d *Document) Save(path string, titles, body []fountain.Paragraph, docTitle string, cfg *config.DocumentConfig) error {
	applyPageLayout(d.styles, cfg, d.log)
	d.insertStyles()

	content, err := d.buildContent(titles, body)
	if err != nil {
		return err
	}
	parts := map[string][]byte{}
	for name, doc := range map[string]*etree.Document{
		partContent:  content,
		partStyles:   d.styles,
		partSettings: d.settings,
		partMeta:     buildMeta(docTitle),
	} {
		data, err := serializeXML(doc)
		if err != nil {
			return fmt.Errorf("unable to serialize %s: %w", name, err)
		}
		parts[name] = data
	}
	if d.manifest != nil {
		if parts[partManifest], err = serializeXML(d.manifest); err != nil {
			return fmt.Errorf("unable to serialize %s: %w", partManifest, err)
		}
	} else {
		parts[partManifest] = []byte(manifestSkeleton)
	}

	var buf bytes.Buffer
	if d.template != "" {
		err = writeContainerFromTemplate(&buf, d.template, parts)
	} else {
		err = writeContainer(&buf, parts)
	}
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write output file (%s): %w", path, err)
	}
	d.log.Debug("document saved", zap.String("path", path), zap.Int("size", buf.Len()))
	return nil
}

func serializeXML(doc *etree.Document) ([]byte, error) {
	if doc.Root() == nil {
		return nil, fmt.Errorf("empty document")
	}
	return doc.WriteToBytes()
}

// insertStyles adds the scheduled screenplay styles to office:styles.
func (d *Document) insertStyles() {
	if len(d.insert) == 0 {
		return
	}
	target := findElement(d.styles.Root(), "office", "styles")
	if target == nil {
		target = d.styles.Root().CreateElement("office:styles")
	}
	for _, el := range d.insert {
		name := attrValue(el, "style", "name")
		// force mode replaces same-named template styles
		for _, existing := range target.ChildElements() {
			if existing.Space == "style" && existing.Tag == "style" &&
				attrValue(existing, "style", "name") == name {
				target.RemoveChild(existing)
				break
			}
		}
		target.AddChild(el)
	}
	d.insert = nil
}

func (d *Document) buildContent(titles, body []fountain.Paragraph) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("office:document-content")
	for _, ns := range documentNamespaces {
		root.CreateAttr(ns[0], ns[1])
	}
	root.CreateAttr("office:version", "1.2")

	auto := root.CreateElement("office:automatic-styles")
	for _, el := range d.autoText {
		auto.AddChild(el.Copy())
	}
	for _, s := range d.ctx.CreatedStyles() {
		appendTextStyle(auto, s)
	}

	text := root.CreateElement("office:body").CreateElement("office:text")
	for _, p := range titles {
		appendParagraph(text, p)
	}
	for _, p := range body {
		appendParagraph(text, p)
	}
	return doc, nil
}

// appendTextStyle renders an allocated emphasis style as an automatic text
// style declaration.
func appendTextStyle(parent *etree.Element, s *fountain.Style) {
	el := parent.CreateElement("style:style")
	el.CreateAttr("style:name", s.Name)
	el.CreateAttr("style:family", "text")
	props := el.CreateElement("style:text-properties")
	if s.IsItalic() {
		props.CreateAttr("fo:font-style", "italic")
		props.CreateAttr("style:font-style-asian", "italic")
		props.CreateAttr("style:font-style-complex", "italic")
	}
	if s.IsBold() {
		props.CreateAttr("fo:font-weight", "bold")
		props.CreateAttr("style:font-weight-asian", "bold")
		props.CreateAttr("style:font-weight-complex", "bold")
	}
	if s.IsUnderline() {
		props.CreateAttr("style:text-underline-style", "solid")
		props.CreateAttr("style:text-underline-width", "auto")
		props.CreateAttr("style:text-underline-color", "font-color")
	}
}

func appendParagraph(parent *etree.Element, p fountain.Paragraph) {
	el := parent.CreateElement("text:p")
	style := p.StyleName
	if style == "" {
		style = "Standard"
	}
	el.CreateAttr("text:style-name", style)
	appendSpans(el, p.Spans)
}

func appendSpans(el *etree.Element, spans []fountain.Span) {
	for _, s := range spans {
		switch {
		case s.Tab:
			el.CreateElement("text:tab")
		case s.Spaces > 0:
			sp := el.CreateElement("text:s")
			sp.CreateAttr("text:c", strconv.Itoa(s.Spaces))
		case s.StyleName != "":
			span := el.CreateElement("text:span")
			span.CreateAttr("text:style-name", s.StyleName)
			appendSpans(span, s.Children)
			if s.Text != "" {
				span.CreateText(s.Text)
			}
		default:
			el.CreateText(s.Text)
		}
	}
}

func buildMeta(title string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("office:document-meta")
	for _, ns := range documentNamespaces {
		root.CreateAttr(ns[0], ns[1])
	}
	root.CreateAttr("office:version", "1.2")
	meta := root.CreateElement("office:meta")
	meta.CreateElement("meta:generator").CreateText(misc.GetAppName() + "/" + misc.GetVersion())
	if title != "" {
		meta.CreateElement("dc:title").CreateText(title)
	}
	return doc
}

// writeContainer builds a fresh ODT zip: the uncompressed mimetype entry
// first, then the XML parts.
func writeContainer(out io.Writer, parts map[string][]byte) error {
	zw := zip.NewWriter(out)
	defer zw.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{Name: partMimetype, Method: zip.Store})
	if err != nil {
		return fmt.Errorf("unable to write mimetype: %w", err)
	}
	if _, err := io.WriteString(w, MimeTypeText); err != nil {
		return fmt.Errorf("unable to write mimetype: %w", err)
	}
	for _, name := range []string{partManifest, partContent, partStyles, partMeta, partSettings} {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("unable to create %s: %w", name, err)
		}
		if _, err := w.Write(parts[name]); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
	}
	return zw.Close()
}
