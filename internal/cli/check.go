package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/errors"
	depio "github.com/matzehuels/depcheck/pkg/io"
	"github.com/matzehuels/depcheck/pkg/pipeline"
	"github.com/matzehuels/depcheck/pkg/render/html"
)

const finishedMessage = "Version check finished."

// noLibraryText is the plain-text form of html.NoLibraryMessage.
const noLibraryText = "No library declaration is found. Please input gradle script which contains dependencies blocks."

// checkOpts holds the check command flags.
type checkOpts struct {
	format      string
	output      string
	interactive bool
	resolve     resolveFlags
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Compare declared library versions with the latest releases",
		Long: `Check reads a build script and looks up the latest version of every declared library.

Supported inputs are Gradle build scripts (build.gradle, build.gradle.kts), Gradle
version catalogs (libs.versions.toml) and Maven POMs (pom.xml). With no file or "-"
the script is read from stdin and its type is detected from the content.`,
		Example: `  depcheck check build.gradle
  depcheck check app/build.gradle.kts --format html -o versions.html
  cat pom.xml | depcheck check --format json
  depcheck check gradle/libs.versions.toml --repo https://repo.example.com/maven2
  depcheck check build.gradle -i`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatText, "output format: text, html, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "interactive view (r: re-run, q: quit)")
	opts.resolve.register(cmd)

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, cmd *cobra.Command, args []string, opts checkOpts) error {
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return err
	}
	if opts.interactive && (opts.output != "" || opts.format != pipeline.FormatText) {
		return errors.New(errors.ErrCodeInvalidInput, "--interactive cannot be combined with --output or --format")
	}

	source := ""
	if len(args) == 1 {
		source = args[0]
	}
	load := func() (string, error) { return readScript(source, cmd.InOrStdin()) }

	text, err := load()
	if err != nil {
		return err
	}

	popts, err := c.options(opts.resolve)
	if err != nil {
		return err
	}
	runner, err := pipeline.NewRunner(popts)
	if err != nil {
		return err
	}
	defer runner.Close()

	if opts.interactive {
		if source == "" || source == "-" {
			// stdin cannot be read again
			load = func() (string, error) { return text, nil }
		}
		return c.runInteractive(ctx, runner, source, load)
	}

	if opts.output != "" {
		return c.checkToFile(ctx, runner, source, text, opts.format, opts.output, cmd.ErrOrStderr())
	}
	return c.check(ctx, runner, source, text, opts.format, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// check runs one version check and writes the result to out. Progress and
// status lines go to status.
func (c *CLI) check(ctx context.Context, runner *pipeline.Runner, source, text, format string, out, status io.Writer) error {
	final, err := c.resolve(ctx, runner, source, text, status)
	if errors.Is(err, errors.ErrCodeNoDeclarations) {
		return writeNoLibrary(format, out, status)
	}
	if err != nil {
		return err
	}
	if err := writeResult(format, final, out); err != nil {
		return err
	}
	report(status, final)
	return nil
}

// checkToFile is check for --output. The file is written only once the
// check has finished.
func (c *CLI) checkToFile(ctx context.Context, runner *pipeline.Runner, source, text, format, path string, status io.Writer) error {
	final, err := c.resolve(ctx, runner, source, text, status)
	empty := errors.Is(err, errors.ErrCodeNoDeclarations)
	if err != nil && !empty {
		return err
	}

	if format == pipeline.FormatJSON {
		if empty {
			printWarning(status, noLibraryText)
			final = deps.Result{Resolved: []deps.Library{}}
		}
		if err := depio.ExportJSON(final, path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
		}
	} else {
		err := writeFile(path, func(w io.Writer) error {
			if empty {
				return writeNoLibrary(format, w, status)
			}
			return writeResult(format, final, w)
		})
		if err != nil {
			return err
		}
	}

	if !empty {
		report(status, final)
	}
	printFile(status, path)
	return nil
}

// resolve starts a run and drives the progress bar until the terminal
// snapshot arrives.
func (c *CLI) resolve(ctx context.Context, runner *pipeline.Runner, source, text string, status io.Writer) (deps.Result, error) {
	run, err := runner.Start(ctx, source, text)
	if err != nil {
		return deps.Result{}, err
	}
	c.Logger.Debug("extracted declarations", "type", run.Type, "libraries", len(run.Declared))

	prog := newProgress(c.Logger)
	bar := newProgressBar(status, len(run.Declared))

	var final deps.Result
	_, _ = runner.Deliver(run, func(r deps.Result) error {
		if r.Terminal() {
			final = r
			return nil
		}
		bar.Describe(r.Progress)
		_ = bar.Add(1)
		return nil
	})
	_ = bar.Finish()
	fmt.Fprintln(status)

	if err := ctx.Err(); err != nil {
		return deps.Result{}, err
	}
	if !final.Terminal() {
		return deps.Result{}, errors.New(errors.ErrCodeInternal, "check ended without a result")
	}
	prog.done(fmt.Sprintf("Checked %d libraries", len(final.Declared)))
	return final, nil
}

// report prints the outdated count and the completion line.
func report(status io.Writer, final deps.Result) {
	if n := countOutdated(final.Declared, final.Resolved); n > 0 {
		printInfo(status, "%d of %d libraries have a newer release", n, len(final.Declared))
	}
	printSuccess(status, finishedMessage)
}

// writeFile creates path and fills it with write. The close error is
// returned so a failed flush is reported.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}

func writeResult(format string, r deps.Result, out io.Writer) error {
	switch format {
	case pipeline.FormatHTML:
		_, err := fmt.Fprintln(out, html.Table(r.Declared, r.Resolved))
		return err
	case pipeline.FormatJSON:
		return depio.WriteJSON(out, r)
	default:
		_, err := fmt.Fprintln(out, renderResultTable(r.Declared, r.Resolved))
		return err
	}
}

// writeNoLibrary reports a script without declarations. This is not an
// error: the command succeeds with an informational message.
func writeNoLibrary(format string, out, status io.Writer) error {
	switch format {
	case pipeline.FormatHTML:
		_, err := fmt.Fprintln(out, html.NoLibraryMessage)
		return err
	case pipeline.FormatJSON:
		printWarning(status, noLibraryText)
		return depio.WriteJSON(out, deps.Result{Resolved: []deps.Library{}})
	default:
		printWarning(out, noLibraryText)
		return nil
	}
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Checking"),
		progressbar.OptionShowDescriptionAtLineEnd(),
	)
}

// readScript reads the build script at path, or stdin for "" and "-".
func readScript(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return string(data), nil
}
