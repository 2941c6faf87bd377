// Package fountain implements the semantic mapping between fountain
// screenplay markup and styled word-processing paragraphs. It has no
// knowledge of the document container - paragraphs come and go as plain
// records and the container format is somebody else's problem.
package fountain

// Type enumerates screenplay element kinds.
type Type int

const (
	TypeNull Type = iota
	TypeTitle
	TypeAction // centered text is a special case of action
	TypeCharacter
	TypeDialogue // lyrics are a special case of dialogue
	TypeNotes
	TypeParenthetical
	TypeSceneHeading
	TypeTransition
	TypePageBreak
)

var typeNames = map[Type]string{
	TypeNull:          "null",
	TypeTitle:         "title",
	TypeAction:        "action",
	TypeCharacter:     "character",
	TypeDialogue:      "dialogue",
	TypeNotes:         "notes",
	TypeParenthetical: "parenthetical",
	TypeSceneHeading:  "scene-heading",
	TypeTransition:    "transition",
	TypePageBreak:     "page-break",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// Rule describes how a semantic type is rendered as fountain plain text:
// which forcing prefix and suffix belong to it, whether blank lines must
// surround it and which types are allowed to precede it.
type Rule struct {
	Name           string
	Type           Type
	Prefix         string
	Suffix         string
	BlankBefore    bool
	BlankAfter     bool
	AlwaysRequired bool
	RequireBefore  []Type
}

// Rules holds the per-conversion rule tables. A separate instance exists for
// every conversion so option driven adjustments (the extended dialogue
// prefix) never leak between runs.
type Rules struct {
	byType  map[Type]*Rule
	byName  map[string]*Rule
	byStyle map[string]*Rule
}

// NewRules builds the default fountain rendering rules.
func NewRules() *Rules {
	primary := []*Rule{
		{Name: "Null", Type: TypeNull}, // no action, don't change type
		{Name: "Title", Type: TypeTitle, Prefix: "Title:", AlwaysRequired: true},
		{Name: "Action", Type: TypeAction, Prefix: "!"},
		{Name: "Character", Type: TypeCharacter, Prefix: "@", BlankBefore: true},
		{Name: "Dialogue", Type: TypeDialogue,
			RequireBefore: []Type{TypeCharacter, TypeParenthetical, TypeDialogue}},
		{Name: "Notes", Type: TypeNotes, Prefix: "[[", Suffix: "]]", AlwaysRequired: true},
		{Name: "Parenthetical", Type: TypeParenthetical, Prefix: "(", Suffix: ")", AlwaysRequired: true,
			RequireBefore: []Type{TypeCharacter, TypeDialogue}},
		{Name: "Scene", Type: TypeSceneHeading, Prefix: ".", BlankBefore: true, BlankAfter: true},
		{Name: "Transition", Type: TypeTransition, Prefix: ">", BlankBefore: true, BlankAfter: true},
	}

	r := &Rules{
		byType:  make(map[Type]*Rule, len(primary)),
		byName:  make(map[string]*Rule, len(primary)+3),
		byStyle: make(map[string]*Rule, 16),
	}
	for _, rule := range primary {
		r.byType[rule.Type] = rule
		r.byName[rule.Name] = rule
	}

	// secondary rules share a type with a primary rule but render differently
	r.byName["Subtitle"] = &Rule{Name: "Subtitle", Type: TypeTitle}
	r.byName["Centred"] = &Rule{Name: "Centred", Type: TypeAction, Prefix: ">", Suffix: "<", AlwaysRequired: true}
	r.byName["Lyrics"] = &Rule{Name: "Lyrics", Type: TypeDialogue, Prefix: "~", AlwaysRequired: true,
		RequireBefore: []Type{TypeCharacter, TypeParenthetical}}

	for styleName, ruleName := range map[string]string{
		"Title":              "Title",
		"Subtitle":           "Subtitle",
		"Title_20_Line":      "Subtitle",
		"Script_20_Elements": "Null",
		"Standard":           "Null",
		"Heading":            "Null",
		"Action":             "Action",
		"Centered":           "Centred",
		"Character":          "Character",
		"Dialogue":           "Dialogue",
		"Lyrics":             "Lyrics",
		"Notes":              "Notes",
		"Parenthetical":      "Parenthetical",
		"Scene":              "Scene",
		"Scene_20_Heading":   "Scene",
		"Transition":         "Transition",
	} {
		r.byStyle[styleName] = r.byName[ruleName]
	}
	return r
}

// ForType returns the primary rule for a semantic type.
func (r *Rules) ForType(t Type) *Rule {
	if rule, ok := r.byType[t]; ok {
		return rule
	}
	return r.byType[TypeNull]
}

// ForName returns a rule by its name.
func (r *Rules) ForName(name string) *Rule {
	return r.byName[name]
}

// ForStyle maps a document style name to its fountain rule, nil when the
// style carries no fountain meaning of its own.
func (r *Rules) ForStyle(styleName string) *Rule {
	return r.byStyle[styleName]
}

// Null returns the do-nothing rule.
func (r *Rules) Null() *Rule {
	return r.byType[TypeNull]
}

// EnableExtendedDialogue rebinds the dialogue forcing prefix to the
// non-standard "%" extension.
func (r *Rules) EnableExtendedDialogue() {
	r.byName["Dialogue"].Prefix = "%"
}
