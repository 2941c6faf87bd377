package odf

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
)

// loadTemplate pulls styles, automatic styles, settings and the manifest out
// of an existing odt/ott container so the output can be built on top of them.
func (d *Document) loadTemplate(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("unable to open template (%s): %w", path, err)
	}
	defer zr.Close()

	mimetype, err := readZipPart(&zr.Reader, partMimetype)
	if err != nil {
		return err
	}
	if mt := strings.TrimSpace(string(mimetype)); mt != MimeTypeText && mt != MimeTypeTextTemplate {
		return fmt.Errorf("unsupported template type %q", mt)
	}

	d.styles, err = parseZipXML(&zr.Reader, partStyles)
	if err != nil {
		return err
	}
	loadStyles(d.styles.Root(), d.ctx, d.log)

	content, err := parseZipXML(&zr.Reader, partContent)
	if err != nil {
		return err
	}
	// automatic styles from template content survive into the output,
	// everything else of the content is replaced
	walkElements(content.Root(), func(el *etree.Element) {
		if el.Space == "style" && el.Tag == "style" {
			if attrValue(el, "style", "family") == "text" {
				seedTextStyle(el, d.ctx)
				d.autoText = append(d.autoText, el.Copy())
			} else {
				parseStyleElement(el, d.ctx)
			}
		}
	})

	if settings, err := parseZipXML(&zr.Reader, partSettings); err == nil {
		d.settings = settings
		disableParagraphTableSpacing(d.settings)
	}
	if manifest, err := parseZipXML(&zr.Reader, partManifest); err == nil {
		d.manifest = manifest
		// the output is a regular document even when built from an .ott
		walkElements(manifest.Root(), func(el *etree.Element) {
			if el.Tag == "file-entry" && attrValue(el, "manifest", "full-path") == "/" {
				setAttr(el, "manifest:media-type", MimeTypeText)
			}
		})
	}
	return nil
}

// disableParagraphTableSpacing turns off the compatibility option that adds
// spacing between paragraphs, it would double the deliberate blank lines.
func disableParagraphTableSpacing(settings *etree.Document) {
	walkElements(settings.Root(), func(el *etree.Element) {
		if el.Space != "config" || el.Tag != "config-item" {
			return
		}
		switch attrValue(el, "config", "name") {
		case "AddParaTableSpacing", "AddParaTableSpacingAtStart":
			el.SetText("false")
		}
	})
}

// writeContainerFromTemplate keeps everything of the template container that
// is not regenerated, pictures and embedded resources included, by copying
// the raw zip entries over.
func writeContainerFromTemplate(out io.Writer, templatePath string, parts map[string][]byte) error {
	r, err := fixzip.OpenReader(templatePath)
	if err != nil {
		return fmt.Errorf("unable to read template (%s): %w", templatePath, err)
	}
	defer r.Close()

	zw := fixzip.NewWriter(out)
	defer zw.Close()

	w, err := zw.CreateHeader(&fixzip.FileHeader{Name: partMimetype, Method: fixzip.Store})
	if err != nil {
		return fmt.Errorf("unable to write mimetype: %w", err)
	}
	if _, err := io.WriteString(w, MimeTypeText); err != nil {
		return fmt.Errorf("unable to write mimetype: %w", err)
	}
	for _, file := range r.File {
		if regeneratedParts[file.Name] {
			continue
		}
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := zw.CopyFile(file); err != nil {
			return fmt.Errorf("unable to copy template entry %s: %w", file.Name, err)
		}
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
