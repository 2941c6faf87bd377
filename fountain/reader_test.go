package fountain

import (
	"slices"
	"strings"
	"testing"
)

func feed(r *Reader, paras ...Paragraph) {
	for _, p := range paras {
		r.Paragraph(p)
	}
}

func para(style, text string) Paragraph {
	return Paragraph{StyleName: style, Spans: []Span{{Text: text}}}
}

// enterBody moves the reader out of its starting state the way real
// documents do, with a page anchored paragraph.
func enterBody() Paragraph {
	return Paragraph{StyleName: "Action_20_PB"}
}

func TestReaderBasicScript(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r,
		para("Scene_20_Heading_20_PB", "Int. Farm House"),
		para("Character", "Bob"),
		para("Dialogue", "You came back."),
	)
	want := []string{"", "INT. FARM HOUSE", "", "BOB", "You came back."}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
	if len(r.Titles()) != 0 {
		t.Errorf("titles = %q, want none", r.Titles())
	}
}

func TestReaderForceTypes(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{ForceTypes: true})
	feed(r,
		para("Scene_20_Heading_20_PB", "INT. BARN"),
		para("Character", "BOB"),
		para("Dialogue", "Hi."),
		para("Parenthetical", "(soft)"),
	)
	want := []string{"", ".INT. BARN", "", "@BOB", "Hi.", "(soft)"}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderExtendedFountain(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{ForceTypes: true, ExtendedFountain: true})
	feed(r,
		para("Action_20_PB", "He waits."),
		para("Character", "BOB"),
		para("Dialogue", "Hi."),
	)
	want := []string{"!He waits.", "", "@BOB", "%Hi."}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderRequiredPredecessor(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	// dialogue with nothing before it gets a synthesized character line
	feed(r, enterBody(), para("Dialogue", "Out of nowhere."))
	want := []string{"", "", "Out of nowhere."}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderCharacterMemory(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r,
		enterBody(),
		para("Character", "BOB"),
		para("Dialogue", "First."),
		para("Action", "He waits."),
		para("Parenthetical", "(to himself)"),
	)
	// the parenthetical needed a character, the remembered name fills in
	want := []string{"", "BOB", "First.", "He waits.", "", "BOB", "(to himself)"}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderEmptyCharacterParagraph(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r,
		enterBody(),
		para("Character", "EVE"),
		para("Dialogue", "One."),
		para("Character", "   "),
		para("Dialogue", "Two."),
	)
	want := []string{"", "EVE", "One.", "", "EVE", "Two."}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderPageBreaks(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	// a break before any content must not emit a marker
	feed(r,
		para("Action_20_PB", "Opening."),
		para("Action", "Middle."),
		para("Action_20_PB", "Next page."),
	)
	want := []string{"Opening.", "Middle.", "===", "Next page."}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderTitlePage(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r,
		para("Title", "Moon Over The Swamp"),
		para("Title_20_Line_20_Centered", "Credit: Written by"),
		para("Title_20_Line", "A bare continuation"),
		Paragraph{StyleName: "Title_20_Line", Spans: []Span{{Tab: true}, {Text: "indented part"}}},
		para("", ""),
		para("Action", "Mist."),
	)
	wantTitles := []string{
		"Title: Moon Over The Swamp",
		"Credit: Written by",
		"Title: A bare continuation",
		"    indented part",
	}
	if !slices.Equal(r.Titles(), wantTitles) {
		t.Errorf("titles = %q, want %q", r.Titles(), wantTitles)
	}
	if !slices.Equal(r.Body(), []string{"Mist."}) {
		t.Errorf("body = %q", r.Body())
	}
}

func TestReaderTitleByMargin(t *testing.T) {
	ctx := newScriptContext()
	wide := ctx.Styles.NewStyle("Title_20_Wide", "Title_20_Line")
	wide.MarginLeft = ptr(40.0)
	ctx.Styles.Resolve()

	r := NewReader(ctx, ReaderOptions{})
	feed(r,
		para("Title", "Name"),
		para("Title_20_Wide", "pushed right"),
	)
	want := []string{"Title: Name", "    pushed right"}
	if !slices.Equal(r.Titles(), want) {
		t.Errorf("titles = %q, want %q", r.Titles(), want)
	}
}

func TestReaderUnknownStyleCarriesOver(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r,
		enterBody(),
		para("Action", "First."),
		para("NoSuchStyle", "Second."),
	)
	want := []string{"First.", "Second."}
	if !slices.Equal(r.Body(), want) {
		t.Errorf("body = %q, want %q", r.Body(), want)
	}
}

func TestReaderEmphasisMarkers(t *testing.T) {
	ctx := newScriptContext()
	bold := ctx.EmphasisStyle(FlagBold)
	biu := ctx.EmphasisStyle(FlagUnderline | FlagBold | FlagItalic)

	r := NewReader(ctx, ReaderOptions{})
	feed(r, enterBody(), Paragraph{StyleName: "Action", Spans: []Span{
		{Text: "He said"},
		{StyleName: bold.Name, Children: []Span{{Text: "loudly"}}},
		{Text: " and "},
		{StyleName: biu.Name, Children: []Span{{Text: "firmly"}}},
		{Text: "."},
	}})
	// a separating space squeezes in when a styled span glues onto text
	want := "He said **loudly** and _***firmly***_."
	if got := r.Body()[0]; got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestReaderSpacesAndTabs(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r, enterBody(), Paragraph{StyleName: "Action", Spans: []Span{
		{Text: "a"},
		{Tab: true},
		{Text: "b"},
		{Spaces: 3},
		{Text: "c"},
	}})
	if got := r.Body()[0]; got != "a\tb   c" {
		t.Errorf("line = %q", got)
	}
}

func TestReaderRecursionBound(t *testing.T) {
	ctx := newScriptContext()
	// sabotage the tables into a cycle, rendering must still terminate
	ctx.Rules.ForType(TypeDialogue).RequireBefore = []Type{TypeNotes}
	ctx.Rules.ForType(TypeNotes).RequireBefore = []Type{TypeDialogue}

	r := NewReader(ctx, ReaderOptions{})
	feed(r, enterBody(), para("Dialogue", "Trapped."))
	if len(r.Body()) > 12 {
		t.Errorf("runaway recursion produced %d lines", len(r.Body()))
	}
}

func TestReaderText(t *testing.T) {
	r := NewReader(newScriptContext(), ReaderOptions{})
	feed(r,
		para("Title", "Short"),
		para("", ""),
		para("Scene_20_Heading", "INT. ANYWHERE"),
		para("Action", "Something happens."),
	)
	got := r.Text()
	if !strings.HasPrefix(got, "Title: Short\n") {
		t.Errorf("output does not start with the title block: %q", got)
	}
	if !strings.HasSuffix(got, "Something happens.\n") {
		t.Errorf("output does not end with a newline terminated body: %q", got)
	}
}
