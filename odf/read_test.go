package odf

import (
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/juliaclement/screenwriting/fountain"
)

func parseFragment(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("fragment does not parse: %v", err)
	}
	return doc.Root()
}

func TestParseStyleElement(t *testing.T) {
	el := parseFragment(t, `<style:style xmlns:style="s" xmlns:fo="f"
		style:name="Scene_20_Heading" style:display-name="Scene Heading"
		style:family="paragraph" style:parent-style-name="Script_20_Elements">
		<style:paragraph-properties fo:margin-top="0.3528cm" fo:margin-bottom="0.3528cm"
			fo:break-before="page" fo:text-align="end"/>
		<style:text-properties fo:text-transform="uppercase" fo:font-style="italic"/>
	</style:style>`)

	ctx := fountain.NewContext(zap.NewNop())
	s := parseStyleElement(el, ctx)
	if s == nil {
		t.Fatal("no style produced")
	}
	if s.Name != "Scene_20_Heading" || s.DisplayName != "Scene Heading" || s.ParentName != "Script_20_Elements" {
		t.Errorf("identity: %q %q %q", s.Name, s.DisplayName, s.ParentName)
	}
	if s.MarginTop == nil || *s.MarginTop < 9.9 || *s.MarginTop > 10.1 {
		t.Errorf("margin-top = %v, want about 10pt", s.MarginTop)
	}
	if !s.IsUppercase() || !s.IsItalic() {
		t.Error("text properties not applied")
	}
	if s.BreakBefore == nil || !*s.BreakBefore || s.PageBreak == nil || !*s.PageBreak {
		t.Error("break-before=page must set both break flags")
	}
	if s.Align == nil || *s.Align != "right" {
		t.Errorf("align = %v, want right", s.Align)
	}
	if !ctx.Styles.Has("Scene_20_Heading") {
		t.Error("style was not registered in the catalogue")
	}
}

func TestParseStyleAttributeEdgeCases(t *testing.T) {
	s := &fountain.Style{}
	applyStyleAttribute(s, "margin-left", "garbage")
	if s.MarginLeft != nil {
		t.Error("unparsable measurement must be skipped")
	}
	applyStyleAttribute(s, "page-number", "auto")
	if s.PageBreak != nil {
		t.Error("page-number=auto is not a break")
	}
	applyStyleAttribute(s, "page-number", "1")
	if s.PageBreak == nil || !*s.PageBreak {
		t.Error("an explicit page number restarts the page")
	}
	applyStyleAttribute(s, "text-transform", "lowercase")
	if s.Uppercase != nil {
		t.Error("only uppercase transform is tracked")
	}
}

func TestCollectParagraphs(t *testing.T) {
	body := parseFragment(t, `<office:text xmlns:office="o" xmlns:text="t">
		<text:sequence-decls/>
		<text:p text:style-name="Action">He waits<text:tab/>then<text:s text:c="3"/>goes<text:line-break/>on.</text:p>
		<text:section>
			<text:h text:style-name="Scene_20_Heading">INT. BARN</text:h>
		</text:section>
		<text:p text:style-name="Dialogue">Said <text:span text:style-name="T1">softly</text:span>.</text:p>
	</office:text>`)

	var paragraphs []fountain.Paragraph
	collectParagraphs(body, &paragraphs)
	if len(paragraphs) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(paragraphs))
	}
	if paragraphs[1].StyleName != "Scene_20_Heading" {
		t.Error("headings inside sections must be collected in order")
	}

	first := paragraphs[0].Spans
	if len(first) != 7 || !first[1].Tab || first[3].Spaces != 3 || first[5].Text != " " {
		t.Errorf("inline tokens misparsed: %+v", first)
	}
	last := paragraphs[2].Spans
	if len(last) != 3 || last[1].StyleName != "T1" || len(last[1].Children) != 1 ||
		last[1].Children[0].Text != "softly" {
		t.Errorf("styled span misparsed: %+v", last)
	}
}

func TestSeedTextStyle(t *testing.T) {
	el := parseFragment(t, `<style:style xmlns:style="s" xmlns:fo="f"
		style:name="T3" style:family="text">
		<style:text-properties fo:font-weight="bold" fo:font-style="italic"/>
	</style:style>`)

	ctx := fountain.NewContext(zap.NewNop())
	seedTextStyle(el, ctx)
	s := ctx.EmphasisStyle(fountain.FlagBold | fountain.FlagItalic)
	if s.Name != "T3" {
		t.Errorf("seeded style not reused, got %q", s.Name)
	}
	if next := ctx.EmphasisStyle(fountain.FlagUnderline); next.Name != "T4" {
		t.Errorf("allocation must continue past seeded names, got %q", next.Name)
	}
}
