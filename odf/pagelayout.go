package odf

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/juliaclement/screenwriting/config"
)

// applyPageLayout rewrites the Mpm1 page layout according to configuration:
// paper dimensions for a4/letter and the standard screenplay margins. The
// asis values leave whatever the skeleton or template declares untouched.
func applyPageLayout(styles *etree.Document, cfg *config.DocumentConfig, log *zap.Logger) {
	if cfg.PaperSize == config.PaperSizeAsis && cfg.Margins == config.MarginsModeAsis {
		return
	}
	var layout *etree.Element
	walkElements(styles.Root(), func(el *etree.Element) {
		if layout == nil && el.Space == "style" && el.Tag == "page-layout" &&
			attrValue(el, "style", "name") == "Mpm1" {
			layout = el
		}
	})
	if layout == nil {
		log.Debug("no Mpm1 page layout to rewrite")
		return
	}
	props := findElement(layout, "style", "page-layout-properties")
	if props == nil {
		props = layout.CreateElement("style:page-layout-properties")
	}
	switch cfg.PaperSize {
	case config.PaperSizeA4:
		setAttr(props, "fo:page-width", "21cm")
		setAttr(props, "fo:page-height", "29.7cm")
	case config.PaperSizeLetter:
		setAttr(props, "fo:page-width", "8.5in")
		setAttr(props, "fo:page-height", "11in")
	}
	if cfg.Margins == config.MarginsModeStandard {
		setAttr(props, "fo:margin-left", "1.5in")
		setAttr(props, "fo:margin-right", "1in")
		setAttr(props, "fo:margin-top", "0.7874in")
		setAttr(props, "fo:margin-bottom", "1in")
	}
}
