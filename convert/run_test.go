package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/juliaclement/screenwriting/config"
	"github.com/juliaclement/screenwriting/state"
)

const sampleScript = `Title: Round Trip
Author: Someone

INT. KITCHEN

BOB
Hello.
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

// conversionCommand builds a command carrying the same flags the real
// subcommands declare.
func conversionCommand(name string, action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:   name,
		Action: action,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}},
			&cli.StringFlag{Name: "force-cp"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"w"}},
			&cli.BoolFlag{Name: "nodirs"},
			&cli.BoolFlag{Name: "force-types"},
			&cli.BoolFlag{Name: "extended-fountain"},
		},
	}
}

func writeSample(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGatherInputs(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "scene10.fountain", sampleScript)
	writeSample(t, dir, "scene2.fountain", sampleScript)
	writeSample(t, dir, "notes.txt", "not a screenplay")
	nested := writeSample(t, dir, filepath.Join("drafts", "old.spmd"), sampleScript)

	inputs, err := gatherInputs([]string{dir}, fountainExts, zap.NewNop())
	if err != nil {
		t.Fatalf("gatherInputs: %v", err)
	}
	if len(inputs) != 3 {
		t.Fatalf("got %d inputs, want 3: %+v", len(inputs), inputs)
	}
	// natural ordering puts scene2 before scene10
	if filepath.Base(inputs[1].path) != "scene2.fountain" || filepath.Base(inputs[2].path) != "scene10.fountain" {
		t.Errorf("unexpected order: %+v", inputs)
	}
	if inputs[0].path != nested || inputs[0].rel != filepath.Join("drafts", "old.spmd") {
		t.Errorf("nested input misresolved: %+v", inputs[0])
	}
}

func TestRunRoundTrip(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := writeSample(t, dir, "script.fountain", sampleScript)
	odt := filepath.Join(dir, "script.odt")
	back := filepath.Join(dir, "back.fountain")

	cmd := conversionCommand("to-odt", RunToODT)
	if err := cmd.Run(ctx, []string{"to-odt", "--output", odt, src}); err != nil {
		t.Fatalf("to-odt: %v", err)
	}
	if _, err := os.Stat(odt); err != nil {
		t.Fatalf("no output document: %v", err)
	}

	cmd = conversionCommand("to-fountain", RunToFountain)
	if err := cmd.Run(ctx, []string{"to-fountain", "--output", back, odt}); err != nil {
		t.Fatalf("to-fountain: %v", err)
	}
	data, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"Title: Round Trip", "INT. KITCHEN", "BOB\nHello."} {
		if !strings.Contains(text, want) {
			t.Errorf("round trip output is missing %q:\n%s", want, text)
		}
	}
}

func TestRunDefaultOutputName(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := writeSample(t, dir, "script.fountain", sampleScript)

	cmd := conversionCommand("to-odt", RunToODT)
	if err := cmd.Run(ctx, []string{"to-odt", src}); err != nil {
		t.Fatalf("to-odt: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "script.odt")); err != nil {
		t.Errorf("default output name must swap the extension: %v", err)
	}
}

func TestRunOutputNeedsSingleInput(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	a := writeSample(t, dir, "a.fountain", sampleScript)
	b := writeSample(t, dir, "b.fountain", sampleScript)

	cmd := conversionCommand("to-odt", RunToODT)
	err := cmd.Run(ctx, []string{"to-odt", "--output", filepath.Join(dir, "out.odt"), a, b})
	if err == nil || !strings.Contains(err.Error(), "single input") {
		t.Errorf("expected a single input error, got %v", err)
	}
}

func TestRunOverwriteGate(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	src := writeSample(t, dir, "script.fountain", sampleScript)
	writeSample(t, dir, "script.odt", "already here")

	cmd := conversionCommand("to-odt", RunToODT)
	if err := cmd.Run(ctx, []string{"to-odt", src}); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected an overwrite refusal, got %v", err)
	}
	cmd = conversionCommand("to-odt", RunToODT)
	if err := cmd.Run(ctx, []string{"to-odt", "--overwrite", src}); err != nil {
		t.Fatalf("overwrite run: %v", err)
	}
	if data, _ := os.ReadFile(filepath.Join(dir, "script.odt")); string(data) == "already here" {
		t.Error("output was not replaced")
	}
}
