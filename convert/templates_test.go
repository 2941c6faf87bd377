package convert

import (
	"testing"

	"github.com/juliaclement/screenwriting/config"
)

func TestExpandTemplate(t *testing.T) {
	src := input{path: "/scripts/drafts/pilot.fountain", rel: "drafts/pilot.fountain", root: "/scripts"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"title", "{{ .Title }}", "Moon Over The Swamp"},
		{"sprig functions", "{{ lower .Title | replace \" \" \"_\" }}", "moon_over_the_swamp"},
		{"source fields", "{{ .SourceDir }}/{{ .SourceFile }}", "drafts/pilot"},
		{"format", "{{ .SourceFile }}.{{ .Format }}", "pilot.odt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(config.OutputNameTemplateFieldName, tt.template, src, "Moon Over The Swamp", ".odt")
			if err != nil {
				t.Fatalf("expandTemplate: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplateParseError(t *testing.T) {
	src := input{rel: "pilot.fountain"}
	if _, err := expandTemplate(config.OutputNameTemplateFieldName, "{{ .Title", src, "", ".odt"); err == nil {
		t.Error("expected a parse error")
	}
}
