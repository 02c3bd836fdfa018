package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/saltyorg/ttygreet/internal/styles"

	"github.com/spf13/cobra"
)

var completionInstall bool

// getBinaryName returns the name the binary was invoked as
func getBinaryName() string {
	return filepath.Base(os.Args[0])
}

// completionPath returns the system-wide completion file for shell.
func completionPath(shell, cmdName string) string {
	switch shell {
	case "bash":
		return fmt.Sprintf("/etc/bash_completion.d/%s", cmdName)
	case "zsh":
		return fmt.Sprintf("/usr/share/zsh/vendor-completions/_%s", cmdName)
	case "fish":
		return fmt.Sprintf("/usr/share/fish/vendor_completions.d/%s.fish", cmdName)
	}
	return ""
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion bash|zsh|fish",
	Short: "Generate shell completion for ttygreet",
	Long: `Generate a shell completion script for ttygreet.

The script is written to stdout. With --install it is written to the
system-wide completion directory instead (requires root).`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := args[0]
		cmdName := getBinaryName()

		if !completionInstall {
			return generateCompletion(cmd.OutOrStdout(), shell, cmdName)
		}

		path := completionPath(shell, cmdName)
		if err := installCompletion(path, shell, cmdName); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "%s completion installed to %s\n", shell, styles.ValueStyle.Render(path))
		return err
	},
}

func init() {
	completionCmd.Flags().BoolVar(&completionInstall, "install", false, "install system-wide instead of printing")
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes cobra's completion script for shell to w,
// using cmdName as the completed command name.
func generateCompletion(w io.Writer, shell, cmdName string) error {
	// Temporarily set the root command's Use field to match the binary name
	// so Cobra generates completion with the correct command name
	originalUse := rootCmd.Use
	rootCmd.Use = cmdName
	defer func() { rootCmd.Use = originalUse }()

	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}
	return nil
}

func installCompletion(path, shell, cmdName string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to write completion file: %w", closeErr)
		}
	}()

	return generateCompletion(file, shell, cmdName)
}
