// Package convert orchestrates conversions between fountain screenplays and
// OpenDocument text files.
package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/google/renameio"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/juliaclement/screenwriting/fountain"
	"github.com/juliaclement/screenwriting/odf"
	"github.com/juliaclement/screenwriting/state"
)

// extensions picked up when walking a directory source
var (
	fountainExts = map[string]bool{".fountain": true, ".spmd": true}
	documentExts = map[string]bool{".odt": true, ".ott": true}
)

// RunToODT converts fountain screenplays to OpenDocument text files.
func RunToODT(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, "to-odt", fountainExts, ".odt", prepareODT)
}

// RunToFountain converts OpenDocument text files to fountain screenplays.
func RunToFountain(ctx context.Context, cmd *cli.Command) error {
	// command line switches take precedence over configuration
	env := state.EnvFromContext(ctx)
	if cmd.Bool("force-types") {
		env.Cfg.Fountain.ForceTypes = true
	}
	if cmd.Bool("extended-fountain") {
		env.Cfg.Fountain.ExtendedFountain = true
	}
	return run(ctx, cmd, "to-fountain", documentExts, ".fountain", prepareFountain)
}

// input is a single file to convert: the absolute path and the path relative
// to the walked directory root (bare file name for explicit file arguments).
type input struct {
	path string
	rel  string
	root string
}

// prepared is a parsed source ready to be written out. Parsing happens
// before the output name is fixed so name templates can see the title.
type prepared struct {
	title string
	write func(dst string) error
}

type prepareFunc func(ctx context.Context, src input, log *zap.Logger) (*prepared, error)

func run(ctx context.Context, cmd *cli.Command, name string, exts map[string]bool, outExt string, fn prepareFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(name)

	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	env.Output, env.Template = cmd.String("output"), cmd.String("template")

	// fountain has no way to declare its encoding, old scripts may need help
	if cp := cmd.String("force-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully transcoding all inputs", zap.String("charset", n))
		}
	}

	inputs, err := gatherInputs(cmd.Args().Slice(), exts, log)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no convertible files were found")
	}
	if env.Output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output is only valid with a single input, %d files were found", len(inputs))
	}

	log.Info("Processing starting", zap.Int("files", len(inputs)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	var errs error
	for _, src := range inputs {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		errs = multierr.Append(errs, processFile(ctx, src, outExt, fn, log))
	}
	return errs
}

// gatherInputs resolves the command line arguments to a naturally ordered
// list of files. Directories are walked recursively picking up files with
// known extensions, explicit files are taken as is.
func gatherInputs(args []string, exts map[string]bool, log *zap.Logger) ([]input, error) {
	var inputs []input
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		fi, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("input source was not found (%s): %w", arg, err)
		}
		if !fi.IsDir() {
			inputs = append(inputs, input{path: abs, rel: filepath.Base(abs), root: filepath.Dir(abs)})
			continue
		}
		count := 0
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
				return nil
			}
			if d.IsDir() || !exts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			rel, err := filepath.Rel(abs, path)
			if err != nil {
				return err
			}
			inputs = append(inputs, input{path: path, rel: rel, root: abs})
			count++
			return nil
		})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			log.Debug("Nothing to process", zap.String("dir", abs))
		}
	}
	sort.Slice(inputs, func(i, j int) bool {
		return natural.Less(inputs[i].path, inputs[j].path)
	})
	return inputs, nil
}

// processFile converts a single file, recovering from panics so one broken
// script does not stop a batch.
func processFile(ctx context.Context, src input, outExt string, fn prepareFunc, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Info("Conversion starting", zap.String("from", src.path))

	var outputName string
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	p, err := fn(ctx, src, log)
	if err != nil {
		return fmt.Errorf("unable to parse source (%s): %w", src.path, err)
	}

	outputName = env.Output
	if outputName == "" {
		outputName = buildOutputPath(src, p.title, outExt, env)
	}
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := p.write(outputName); err != nil {
		return fmt.Errorf("unable to convert (%s): %w", src.path, err)
	}
	if env.Rpt != nil {
		env.Rpt.Store("result-"+filepath.Base(outputName), outputName)
	}
	return nil
}

func prepareODT(ctx context.Context, src input, log *zap.Logger) (*prepared, error) {
	env := state.EnvFromContext(ctx)

	lines, err := readLines(src.path, env)
	if err != nil {
		return nil, err
	}

	fctx := fountain.NewContext(log)
	doc, err := odf.New(fctx, env.Template, env.Cfg.Document.ForceStyles, log)
	if err != nil {
		return nil, err
	}
	w := fountain.NewWriter(fctx)
	if err := w.Process(lines); err != nil {
		return nil, err
	}
	return &prepared{
		title: w.Title(),
		write: func(dst string) error {
			return doc.Save(dst, w.Titles(), w.Body(), w.Title(), &env.Cfg.Document)
		},
	}, nil
}

func prepareFountain(ctx context.Context, src input, log *zap.Logger) (*prepared, error) {
	env := state.EnvFromContext(ctx)

	fctx := fountain.NewContext(log)
	paragraphs, err := odf.Read(src.path, fctx, log)
	if err != nil {
		return nil, err
	}
	r := fountain.NewReader(fctx, fountain.ReaderOptions{
		ForceTypes:       env.Cfg.Fountain.ForceTypes,
		ExtendedFountain: env.Cfg.Fountain.ExtendedFountain,
	})
	for _, p := range paragraphs {
		r.Paragraph(p)
	}
	return &prepared{
		title: titleFromLines(r.Titles()),
		write: func(dst string) error {
			return renameio.WriteFile(dst, []byte(r.Text()), 0644)
		},
	}, nil
}

// titleFromLines recovers the screenplay title from a rendered title block.
func titleFromLines(titles []string) string {
	for _, line := range titles {
		if rest, ok := strings.CutPrefix(line, "Title:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// readLines slurps a fountain source, optionally transcoding it from a
// forced code page.
func readLines(path string, env *state.LocalEnv) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if env.CodePage != nil {
		r = transform.NewReader(file, env.CodePage.NewDecoder())
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read source (%s): %w", path, err)
	}
	return lines, nil
}
