package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"brigada/internal/app"
	"brigada/internal/archive"
	"brigada/internal/config"
	"brigada/internal/log"
	"brigada/internal/report/pdf"
	"brigada/internal/submit"
	"brigada/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "brigada",
	Short:   "Formulario de necesidades para brigadas de bomberos voluntarios",
	Long:    `A terminal intake form for volunteer firefighter brigades: collects the brigade's resource needs section by section, submits them, and exports the PDF report.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/brigada/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to brigada-debug.log")
	rootCmd.Flags().String("endpoint", "",
		"submission endpoint URL")

	// Bind flags to viper
	_ = viper.BindPFlag("api.endpoint", rootCmd.Flags().Lookup("endpoint"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("api.endpoint", defaults.API.Endpoint)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("report.output_dir", defaults.Report.OutputDir)
	viper.SetDefault("archive.path", defaults.Archive.Path)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .brigada/config.yaml (current directory)
		// 2. ~/.config/brigada/config.yaml (user config)
		if _, err := os.Stat(".brigada/config.yaml"); err == nil {
			viper.SetConfigFile(".brigada/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "brigada"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .brigada/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".brigada/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// initLogging turns the debug log on when requested. The returned cleanup
// is a no-op when logging stays off.
func initLogging() func() {
	if !debugFlag && os.Getenv("BRIGADA_DEBUG") == "" {
		return func() {}
	}

	cleanup, err := log.Init("brigada-debug.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		return func() {}
	}
	log.Info(log.CatConfig, "Brigada starting", "version", version)
	return cleanup
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup := initLogging()
	defer cleanup()

	if err := styles.ApplyTheme(styles.ThemeConfig{Mode: cfg.Theme.Mode, Colors: cfg.Theme.Colors}); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}

	var sink submit.Sink
	if cfg.API.Endpoint != "" {
		sink = submit.NewHTTPSink(cfg.API.Endpoint, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	}

	// The archive is best effort: the form still works without local
	// submission history.
	store, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		log.ErrorErr(log.CatArchive, "Archive unavailable", err, "path", cfg.Archive.Path)
		store = nil
	} else {
		defer func() { _ = store.Close() }()
	}

	// Store the config file path for the theme toggle write-back
	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		configFilePath = ".brigada/config.yaml"
	}

	model := app.New(cfg, configFilePath, sink, pdf.New(), store)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
