package cmd

import (
	"fmt"
	"os"

	"github.com/saltyorg/ttygreet/internal/config"
	"github.com/saltyorg/ttygreet/internal/errors"
	"github.com/saltyorg/ttygreet/internal/logging"
	"github.com/saltyorg/ttygreet/internal/styles"
	"github.com/saltyorg/ttygreet/internal/tty"

	"github.com/spf13/cobra"
)

var (
	cfgFile          string
	probeFlag        string
	colorProfileFlag string
	verbosity        int
)

// Settings is the resolved configuration shared by all commands.
type Settings struct {
	Backend      tty.Backend
	ColorProfile string
	Verbosity    int
}

// current is filled in by the root PersistentPreRunE.
var current Settings

// newProbe builds the stdin probe used by hello; tests replace it.
var newProbe = func(backend tty.Backend) tty.Probe {
	return tty.Stdin(backend)
}

// onInterrupt reports an interrupt and requests shutdown; tests replace it.
var onInterrupt = errors.HandleInterruptError

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ttygreet",
	Short: "Greet interactive terminals",
	Long: `Prints "Hello, world!" when standard input is an interactive terminal.

Running ttygreet with no subcommand is the same as "ttygreet hello".
When stdin is redirected from a file or pipe it fails with
"must be called from a tty" and exits 1.`,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadSettings,
	RunE:              runHello,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true, // replaced by our completion command
	},
}

// GetRootCommand returns the root command for use with fang.Execute
func GetRootCommand() *cobra.Command {
	return rootCmd
}

// CurrentSettings returns the settings resolved for the last executed command.
func CurrentSettings() Settings {
	return current
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default $%s or <user config dir>/ttygreet/config.yml)", config.EnvConfig))
	rootCmd.PersistentFlags().StringVar(&probeFlag, "probe", "", "terminal detection backend: isatty or term")
	rootCmd.PersistentFlags().StringVar(&colorProfileFlag, "color-profile", "", "color profile for diagnostics: truecolor, ansi256, ansi or ascii")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v debug, -vv trace)")

	_ = rootCmd.RegisterFlagCompletionFunc("probe", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return tty.Backends, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color-profile", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return styles.ColorProfiles, cobra.ShellCompDirectiveNoFileComp
	})
}

// loadSettings resolves config file, environment and flags, in increasing precedence.
func loadSettings(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, required, verbosity)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	if probeFlag != "" {
		cfg.Probe = probeFlag
	}
	if colorProfileFlag != "" {
		cfg.ColorProfile = colorProfileFlag
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	backend, err := tty.ParseBackend(cfg.Probe)
	if err != nil {
		return err
	}

	current = Settings{
		Backend:      backend,
		ColorProfile: cfg.ColorProfile,
		Verbosity:    max(verbosity, cfg.Verbosity),
	}
	if current.ColorProfile != "" {
		styles.ApplyColorProfile(current.ColorProfile, tty.IsInteractive())
	}
	logging.Debug(current.Verbosity, "Resolved settings for %s: %+v", cmd.Name(), current)
	return nil
}

// handleInterruptError checks if the error is from a user interrupt and triggers shutdown.
func handleInterruptError(err error) error {
	onInterrupt(err)
	return err
}
