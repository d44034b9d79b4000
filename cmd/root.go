package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saravenpi/parley/internal/config"
	"github.com/saravenpi/parley/internal/fixtures"
	"github.com/saravenpi/parley/internal/i18n"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/storage"
	"github.com/saravenpi/parley/internal/ui"
)

var (
	debugMode     bool
	ephemeralMode bool
	langFlag      string
	themeFlag     string
	dataDirFlag   string

	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Terminal chat client",
	Long: `Parley is a terminal chat client with a paginated conversation view,
light and dark themes, and English and Spanish translations.

Messages you send and the preferences you pick are kept in a small
key/value store under the data directory (~/.parley by default).`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Interface language (en, es)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Colour theme (light, dark, system)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory for the database and log (default ~/.parley)")
	rootCmd.PersistentFlags().BoolVar(&ephemeralMode, "ephemeral", false, "Keep everything in memory; nothing is saved")
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("parley %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("parley %s\n", version)
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = langFlag
	}
	if flags.Changed("theme") {
		cfg.Theme = themeFlag
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDirFlag
	}
	cfg.Ephemeral = ephemeralMode
	cfg.Debug = debugMode

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the SQLite store under the data directory, or an
// in-memory one for --ephemeral.
func openStore(cfg *config.Config) (*storage.Store, error) {
	if cfg.Ephemeral {
		return storage.New(storage.NewMemory()), nil
	}
	backend, err := storage.OpenSQLite(storage.DBPath(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}
	return storage.New(backend), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logger.Init(cfg.ResolvedLogPath()); err != nil {
		return err
	}
	defer logger.Close()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	seed, err := fixtures.Default()
	if err != nil {
		return fmt.Errorf("error loading chats: %w", err)
	}

	prefs := cfg.Preferences(cmd.Context(), store)
	logger.Info("Starting parley %s (lang=%s theme=%s data=%s)", version, prefs.Language, prefs.Theme, cfg.DataDir)

	m := ui.NewApp(ui.Options{
		Store:      store,
		Seed:       seed,
		Translator: i18n.MustNew(prefs.Language),
		Theme:      prefs.Theme,
		PageSize:   cfg.PageSize,
		Now:        time.Now,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
