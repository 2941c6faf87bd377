package odf

// The screenplay paragraph styles, ready to be inserted into styles.xml.
// Ordered so every parent precedes its children. Variant suffixes: "PB"
// breaks to a new page, "ATi"/"ATr"/"AS" adjust spacing after titles,
// transitions and scene headings.
type styleTemplate struct {
	name   string
	parent string
	xml    string
}

var scriptStyleTemplates = []styleTemplate{
	{"Heading", "Standard", `<style:style style:name="Heading" style:family="paragraph" style:parent-style-name="Standard" style:next-style-name="Standard" style:class="text">` +
		`<style:paragraph-properties fo:margin-top="0.423cm" fo:margin-bottom="0.212cm" style:contextual-spacing="false" fo:keep-with-next="always"/>` +
		`<style:text-properties style:font-name="Liberation Sans1" fo:font-family="&apos;Liberation Sans&apos;" style:font-family-generic="swiss" style:font-pitch="variable" fo:font-size="14pt"/>` +
		`</style:style>`},
	{"Title", "Heading", `<style:style style:name="Title" style:family="paragraph" style:parent-style-name="Heading" style:next-style-name="Standard" style:class="chapter">` +
		`<style:paragraph-properties fo:text-align="center" style:justify-single-word="false"/>` +
		`<style:text-properties fo:font-size="28pt" fo:font-weight="bold"/>` +
		`</style:style>`},
	{"Script_20_Elements", "Standard", `<style:style style:name="Script_20_Elements" style:display-name="Script Elements" style:family="paragraph" style:parent-style-name="Standard" style:class="text">` +
		`<style:paragraph-properties><style:tab-stops/></style:paragraph-properties>` +
		`<style:text-properties style:font-name="Liberation Mono" fo:font-family="&apos;Liberation Mono&apos;" style:font-style-name="Regular" style:font-family-generic="modern" style:font-pitch="fixed"/>` +
		`</style:style>`},
	{"Character", "Script_20_Elements", `<style:style style:name="Character" style:family="paragraph" style:parent-style-name="Script_20_Elements" style:next-style-name="Dialogue" style:master-page-name="">` +
		`<style:paragraph-properties fo:margin-left="5.59cm" fo:margin-right="0cm" fo:margin-top="0.3528cm" fo:text-indent="0cm" style:auto-text-indent="false" style:page-number="auto" fo:keep-with-next="always"/>` +
		`<style:text-properties fo:text-transform="uppercase"/></style:style>`},
	{"Dialogue", "Script_20_Elements", `<style:style style:name="Dialogue" style:family="paragraph" style:parent-style-name="Script_20_Elements" style:master-page-name="">` +
		`<style:paragraph-properties fo:margin-left="2.54cm" fo:margin-right="0cm" fo:text-indent="0cm" style:auto-text-indent="false" style:page-number="auto"/>` +
		`</style:style>`},
	{"Scene_20_Heading", "Script_20_Elements", `<style:style style:name="Scene_20_Heading" style:display-name="Scene Heading" style:family="paragraph" style:parent-style-name="Script_20_Elements" style:next-style-name="Character" style:master-page-name="">` +
		`<style:paragraph-properties fo:margin-top="0.3528cm" fo:margin-bottom="0.3528cm" fo:orphans="4" fo:widows="4" style:page-number="auto" fo:keep-with-next="always"/>` +
		`<style:text-properties fo:text-transform="uppercase"/>` +
		`</style:style>`},
	{"Transition", "Script_20_Elements", `<style:style style:name="Transition" style:family="paragraph" style:parent-style-name="Script_20_Elements" style:next-style-name="Scene_20_Heading" style:master-page-name="">` +
		`<style:paragraph-properties fo:margin-top="0.3528cm" fo:margin-bottom="0.3528cm" fo:text-align="end" style:justify-single-word="false" style:page-number="auto" fo:keep-with-next="always">` +
		`<style:tab-stops/>` +
		`</style:paragraph-properties>` +
		`<style:text-properties fo:text-transform="uppercase"/>` +
		`</style:style>`},
	{"Action", "Script_20_Elements", `<style:style style:name="Action" style:family="paragraph" style:parent-style-name="Script_20_Elements">` +
		`<style:paragraph-properties>` +
		`<style:tab-stops/>` +
		`</style:paragraph-properties>` +
		`</style:style>`},
	{"Parenthetical", "Script_20_Elements", `<style:style style:name="Parenthetical" style:family="paragraph" style:parent-style-name="Script_20_Elements" style:next-style-name="Dialogue">` +
		`<style:paragraph-properties fo:margin-left="3.81cm" fo:margin-right="0cm" fo:text-indent="0cm" style:auto-text-indent="false"/>` +
		`</style:style>`},
	{"Lyrics", "Dialogue", `<style:style style:name="Lyrics" style:family="paragraph" style:parent-style-name="Dialogue">` +
		`<style:text-properties fo:font-style="italic"/></style:style>`},
	{"Centered", "Action", `<style:style style:name="Centered" style:family="paragraph" style:parent-style-name="Action">` +
		`<style:paragraph-properties fo:text-align="center" style:justify-single-word="false"/>` +
		`</style:style>`},
	{"Notes", "Script_20_Elements", `<style:style style:name="Notes" style:family="paragraph" style:parent-style-name="Script_20_Elements" style:next-style-name="Dialogue">` +
		`<style:paragraph-properties fo:margin-left="1.27cm" fo:margin-right="0cm" fo:text-indent="0cm" style:auto-text-indent="false" style:border-line-width="0cm 0.026cm 0.026cm" fo:padding="0.049cm" fo:border="1.5pt double #000000">` +
		`<style:tab-stops/>` +
		`</style:paragraph-properties>` +
		`<style:text-properties fo:font-style="italic" fo:background-color="#fff5ce"/>` +
		`</style:style>`},
	{"Title_20_Line", "Script_20_Elements", `<style:style style:name="Title_20_Line" style:display-name="Title Line" style:family="paragraph" style:parent-style-name="Script_20_Elements">` +
		`<style:text-properties style:font-name="Liberation Sans1" fo:font-family="&apos;Liberation Sans&apos;" style:font-style-name="Regular" style:font-family-generic="swiss" style:font-pitch="variable" fo:font-size="14pt"/>` +
		`</style:style>`},
	{"Title_20_Line_20_Centered", "Title_20_Line", `<style:style style:name="Title_20_Line_20_Centered" style:display-name="Title Line Centered" style:family="paragraph" style:parent-style-name="Title_20_Line">` +
		`<style:paragraph-properties fo:margin-left="5.08cm" style:justify-single-word="false"/>` +
		`</style:style>`},
	{"Title_20_Ends", "Title_20_Line", `<style:style style:name="Title_20_Ends" style:display-name="Title Ends" style:family="paragraph" style:parent-style-name="Title_20_Line" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-after="page" style:border-line-width-bottom="0.018cm 0.004cm 0.018cm" fo:padding="0.049cm" fo:border-left="none" fo:border-right="none" fo:border-top="none" fo:border-bottom="1.11pt double-thin #808080"/>` +
		`</style:style>`},
	{"Character_20_AS", "Character", `<style:style style:name="Character_20_AS" style:display-name="Character AS" style:family="paragraph" style:parent-style-name="Character" style:next-style-name="Dialogue">` +
		`<style:paragraph-properties fo:margin-top="0cm" fo:margin-bottom="0cm" style:contextual-spacing="false"/>` +
		`</style:style>`},
	{"Scene_20_Heading_20_ATi", "Scene_20_Heading", `<style:style style:name="Scene_20_Heading_20_ATi" style:display-name="Scene Heading ATi" style:family="paragraph" style:parent-style-name="Scene_20_Heading" style:next-style-name="Action" style:master-page-name="Standard">` +
		`<style:paragraph-properties fo:margin-top="0cm" fo:margin-bottom="0.3528cm" style:contextual-spacing="false" style:page-number="1"/>` +
		`</style:style>`},
	{"Scene_20_Heading_20_PB", "Scene_20_Heading", `<style:style style:name="Scene_20_Heading_20_PB" style:display-name="Scene Heading PB" style:family="paragraph" style:parent-style-name="Scene_20_Heading" style:next-style-name="Action" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Character_20_PB", "Character", `<style:style style:name="Character_20_PB" style:display-name="Character PB" style:family="paragraph" style:parent-style-name="Character" style:next-style-name="Action" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Action_20_PB", "Action", `<style:style style:name="Action_20_PB" style:display-name="Action PB" style:family="paragraph" style:parent-style-name="Action" style:next-style-name="Action" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Notes_20_PB", "Notes", `<style:style style:name="Notes_20_PB" style:display-name="Notes PB" style:family="paragraph" style:parent-style-name="Notes" style:next-style-name="Dialogue" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Centered_20_PB", "Centered", `<style:style style:name="Centered_20_PB" style:display-name="Centered PB" style:family="paragraph" style:parent-style-name="Centered" style:next-style-name="Centered" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Parenthetical_20_PB", "Parenthetical", `<style:style style:name="Parenthetical_20_PB" style:display-name="Parenthetical PB" style:family="paragraph" style:parent-style-name="Parenthetical" style:next-style-name="Dialogue" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Scene_20_Heading_20_ATr", "Scene_20_Heading", `<style:style style:name="Scene_20_Heading_20_ATr" style:display-name="Scene Heading ATr" style:family="paragraph" style:parent-style-name="Scene_20_Heading" style:next-style-name="Action" style:master-page-name="">` +
		`<style:paragraph-properties fo:margin-top="0cm" fo:margin-bottom="0.3528cm" style:contextual-spacing="false" style:page-number="auto"/>` +
		`</style:style>`},
	{"Transition_20_PB", "Transition", `<style:style style:name="Transition_20_PB" style:display-name="Transition PB" style:family="paragraph" style:parent-style-name="Transition" style:next-style-name="Scene_20_Heading_20_ATr" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Dialogue_20_PB", "Dialogue", `<style:style style:name="Dialogue_20_PB" style:display-name="Dialogue PB" style:family="paragraph" style:parent-style-name="Dialogue" style:next-style-name="Dialogue" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Lyrics_20_PB", "Lyrics", `<style:style style:name="Lyrics_20_PB" style:display-name="Lyrics PB" style:family="paragraph" style:parent-style-name="Lyrics" style:next-style-name="Lyrics" style:master-page-name="">` +
		`<style:paragraph-properties style:page-number="auto" fo:break-before="page"/>` +
		`</style:style>`},
	{"Action_20_ATi", "Action", `<style:style style:name="Action_20_ATi" style:display-name="Action ATi" style:family="paragraph" style:parent-style-name="Action" style:next-style-name="Action" style:master-page-name="Standard">` +
		`<style:paragraph-properties style:page-number="1"/>` +
		`</style:style>`},
}

// namespace declarations shared by all generated document roots
var documentNamespaces = [][2]string{
	{"xmlns:office", "urn:oasis:names:tc:opendocument:xmlns:office:1.0"},
	{"xmlns:style", "urn:oasis:names:tc:opendocument:xmlns:style:1.0"},
	{"xmlns:text", "urn:oasis:names:tc:opendocument:xmlns:text:1.0"},
	{"xmlns:table", "urn:oasis:names:tc:opendocument:xmlns:table:1.0"},
	{"xmlns:draw", "urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"},
	{"xmlns:fo", "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"},
	{"xmlns:xlink", "http://www.w3.org/1999/xlink"},
	{"xmlns:dc", "http://purl.org/dc/elements/1.1/"},
	{"xmlns:meta", "urn:oasis:names:tc:opendocument:xmlns:meta:1.0"},
	{"xmlns:number", "urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"},
	{"xmlns:svg", "urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"},
	{"xmlns:config", "urn:oasis:names:tc:opendocument:xmlns:config:1.0"},
	{"xmlns:officeooo", "http://openoffice.org/2009/office"},
}

// stylesSkeleton is the styles.xml for documents built without a template:
// font declarations, the base styles everything inherits from and the page
// layout the configuration rewrite targets.
const stylesSkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0" xmlns:officeooo="http://openoffice.org/2009/office" office:version="1.2">
 <office:font-face-decls>
  <style:font-face style:name="Liberation Mono" svg:font-family="&apos;Liberation Mono&apos;" style:font-family-generic="modern" style:font-pitch="fixed"/>
  <style:font-face style:name="Liberation Sans" svg:font-family="&apos;Liberation Sans&apos;" style:font-family-generic="swiss" style:font-pitch="variable"/>
  <style:font-face style:name="Liberation Sans1" svg:font-family="&apos;Liberation Sans&apos;" style:font-family-generic="swiss" style:font-pitch="variable"/>
  <style:font-face style:name="Liberation Serif" svg:font-family="&apos;Liberation Serif&apos;" style:font-family-generic="roman" style:font-pitch="variable"/>
 </office:font-face-decls>
 <office:styles>
  <style:default-style style:family="paragraph">
   <style:paragraph-properties fo:hyphenation-ladder-count="no-limit" style:text-autospace="ideograph-alpha" style:punctuation-wrap="hanging" style:line-break="strict" style:tab-stop-distance="1.251cm" style:writing-mode="page"/>
   <style:text-properties style:font-name="Liberation Serif" fo:font-size="12pt" fo:language="en" fo:country="US"/>
  </style:default-style>
  <style:style style:name="Standard" style:family="paragraph" style:class="text"/>
 </office:styles>
 <office:automatic-styles>
  <style:page-layout style:name="Mpm1">
   <style:page-layout-properties fo:page-width="8.5in" fo:page-height="11in" style:num-format="1" style:print-orientation="portrait" fo:margin-top="0.7874in" fo:margin-bottom="1in" fo:margin-left="1.5in" fo:margin-right="1in" style:writing-mode="lr-tb" style:footnote-max-height="0cm">
    <style:footnote-sep style:width="0.018cm" style:distance-before-sep="0.101cm" style:distance-after-sep="0.101cm" style:line-style="solid" style:adjustment="left" style:rel-width="25%" style:color="#000000"/>
   </style:page-layout-properties>
   <style:header-style/>
   <style:footer-style/>
  </style:page-layout>
 </office:automatic-styles>
 <office:master-styles>
  <style:master-page style:name="Standard" style:page-layout-name="Mpm1"/>
 </office:master-styles>
</office:document-styles>
`

// settingsSkeleton already has the paragraph table spacing compatibility
// options off, the rewrite for template settings only has to flip them.
const settingsSkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-settings xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:config="urn:oasis:names:tc:opendocument:xmlns:config:1.0" office:version="1.2">
 <office:settings>
  <config:config-item-set config:name="ooo:configuration-settings">
   <config:config-item config:name="AddParaTableSpacing" config:type="boolean">false</config:config-item>
   <config:config-item config:name="AddParaTableSpacingAtStart" config:type="boolean">false</config:config-item>
  </config:config-item-set>
 </office:settings>
</office:document-settings>
`

const manifestSkeleton = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.text"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="meta.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="settings.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`
