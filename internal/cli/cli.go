// Package cli implements the depcheck command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depcheck/pkg/buildinfo"
	"github.com/matzehuels/depcheck/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and cookies.
	appName = "depcheck"

	// defaultAddr is the listen address of the web panel.
	defaultAddr = "127.0.0.1:8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogError = log.ErrorLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "depcheck compares declared library versions with the latest releases",
		Long:          `depcheck reads the dependency declarations of a Gradle build script, version catalog or Maven POM, looks up the latest published version of each library and shows them side by side.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.registerHooks()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// resolveFlags holds the package index flags shared by check and serve.
type resolveFlags struct {
	repositories []string
	index        string
}

func (f *resolveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.repositories, "repo", nil, "Maven repository root to query (repeatable; default: Maven Central, Google Maven)")
	cmd.Flags().StringVar(&f.index, "index", pipeline.DefaultIndex, "package index: metadata, search")
}

// options builds validated pipeline options from the flags.
func (c *CLI) options(f resolveFlags) (pipeline.Options, error) {
	opts := pipeline.Options{
		Index:        f.index,
		Repositories: append([]string(nil), f.repositories...),
		Logger:       c.Logger,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}
