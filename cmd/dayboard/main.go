package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayboard/cmd/dayboard/shell"
	"dayboard/internal/config"
	"dayboard/internal/logging"
	"dayboard/internal/store"
)

const version = "v0.1.0"

var (
	// Global flags
	configPath string
	token      string
	theme      string
	verbose    bool

	// Loaded in PersistentPreRunE, consumed by the subcommands.
	cfg config.Config
)

// rootCmd launches the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "dayboard",
	Short: "dayboard - a terminal workspace shell",
	Long: `dayboard is a terminal workspace shell with chat, schedule, and
notes panels.

On start it signs in against the configured identity provider - with a
pre-issued token when one is supplied, anonymously otherwise - and then
opens the tabbed shell. Panels are placeholders until their features ship.

Run without arguments to start the interactive shell.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		// Flags win over file and environment.
		if token != "" {
			cfg.InitialToken = token
		}
		if theme != "" {
			cfg.Theme = theme
		}
		if verbose {
			cfg.Logging.DebugMode = true
			cfg.Logging.Level = "debug"
		}

		return logging.Initialize(cfg.Logging)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.Run(shell.Config{App: cfg, Version: version})
	},
}

// versionCmd prints the release version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dayboard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dayboard %s\n", version)
	},
}

// statusCmd shows the effective configuration without starting the shell.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show dayboard configuration status",
	RunE:  showStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.dayboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Pre-issued credential token (or set DAYBOARD_INITIAL_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "UI theme: light or dark (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("dayboard status")
	fmt.Println("===============")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("App ID:  %s\n", cfg.AppID)
	fmt.Println()

	switch {
	case cfg.Provider.IsEmpty():
		fmt.Println("✗ Identity provider not configured (shell will stay blocked)")
	case cfg.Provider.Validate() != nil:
		fmt.Printf("✗ Identity provider config invalid: %v\n", cfg.Provider.Validate())
	default:
		fmt.Printf("✓ Identity provider: %s\n", cfg.Provider.BaseURL)
	}

	if cfg.InitialToken != "" {
		fmt.Println("✓ Pre-issued token present")
	} else {
		fmt.Println("- No pre-issued token (anonymous sign-in)")
	}

	// Per-user document paths, shown with a placeholder identity: no
	// store calls run until the panels grow real features.
	docs := store.NewClient(cfg.Store, cfg.AppID)
	fmt.Println()
	fmt.Println("Document store paths (uid assigned at sign-in):")
	for _, name := range []string{"chat", "schedule", "notes"} {
		fmt.Printf("  %s\n", docs.URL("<uid>", name))
	}
	return nil
}
