package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/juliaclement/screenwriting/config"
)

// Values holds variables we make available for template expansion.
type Values struct {
	Context    string
	Title      string
	Format     string
	SourceFile string
	SourceDir  string
}

func expandTemplate(name config.TemplateFieldName, field string, src input, title, outExt string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      title,
		Format:     strings.TrimPrefix(outExt, "."),
		SourceFile: strings.TrimSuffix(filepath.Base(src.rel), filepath.Ext(src.rel)),
		SourceDir:  filepath.Dir(src.rel),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
