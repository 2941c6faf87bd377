// Package odf reads and writes OpenDocument text containers, translating
// between the zip packaged XML parts and the paragraph records the fountain
// package works with.
package odf

import (
	"github.com/beevik/etree"
)

const (
	MimeTypeText         = "application/vnd.oasis.opendocument.text"
	MimeTypeTextTemplate = "application/vnd.oasis.opendocument.text-template"

	partMimetype = "mimetype"
	partManifest = "META-INF/manifest.xml"
	partContent  = "content.xml"
	partStyles   = "styles.xml"
	partMeta     = "meta.xml"
	partSettings = "settings.xml"
)

// regenerated parts are never copied through from a template
var regeneratedParts = map[string]bool{
	partMimetype: true,
	partManifest: true,
	partContent:  true,
	partStyles:   true,
	partMeta:     true,
	partSettings: true,
}

// walkElements visits el and every element below it in document order.
func walkElements(el *etree.Element, visit func(*etree.Element)) {
	visit(el)
	for _, child := range el.ChildElements() {
		walkElements(child, visit)
	}
}

// findElement returns the first descendant with the given prefix and local
// name, nil when absent.
func findElement(el *etree.Element, space, tag string) *etree.Element {
	var found *etree.Element
	walkElements(el, func(e *etree.Element) {
		if found == nil && e.Space == space && e.Tag == tag {
			found = e
		}
	})
	return found
}

func attrValue(el *etree.Element, space, key string) string {
	for _, a := range el.Attr {
		if a.Space == space && a.Key == key {
			return a.Value
		}
	}
	return ""
}
