package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vxindex/vxindex/config"
	"github.com/vxindex/vxindex/log"
)

var cfgFile string

// rootCmd runs the demo: a grid of sections with an index strip over it
var rootCmd = &cobra.Command{
	Use:   "vxindex",
	Short: "Scrub through a sectioned grid with an index strip",
	Long: `vxindex shows a grid of items grouped in sections, with a strip of
section labels along one edge. Press on the strip and drag to jump between
sections.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command. It is called by main.main()
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// flagKeys maps flag names to config keys
var flagKeys = map[string]string{
	"labels":        config.KeyLabels,
	"edge":          config.KeyEdge,
	"inset":         config.KeyInset,
	"cell-width":    config.KeyCellWidth,
	"attributes":    config.KeyAttributes,
	"foreground":    config.KeyForeground,
	"overlay-color": config.KeyOverlay,
	"overlay-alpha": config.KeyOverlayAlpha,
	"background":    config.KeyBackground,
	"log-level":     config.KeyLogLevel,
	"log-file":      config.KeyLogFile,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vxindex.toml)")
	flags.StringSlice("labels", config.DefaultLabels(), "section labels")
	flags.String("edge", "right", "edge of the strip: right, left, bottom or top")
	flags.Bool("inset", true, "keep the grid out from under the strip")
	flags.Int("cell-width", 14, "width of a grid cell")
	flags.StringSlice("attributes", []string{"bold"}, "label attributes")
	flags.String("foreground", "", "label color, #rrggbb or 0-255")
	flags.String("overlay-color", "#555555", "color behind the strip while pressed")
	flags.Float64("overlay-alpha", 0.6, "opacity of the overlay color, 0 to 1")
	flags.String("background", "", "color the overlay is blended over")
	flags.String("log-level", "error", "error, warn, info, debug or trace")
	flags.String("log-file", "", "write logs to this file")

	config.SetDefaults(viper.GetViper())
	bindFlags(viper.GetViper(), flags)
}

// bindFlags makes flags take priority over the config file. Flags which are
// not set fall back to the config value
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		err := v.BindPFlag(key, f)
		if err != nil {
			panic(err)
		}
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".vxindex")
	}
	viper.SetEnvPrefix("vxindex")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(cfg.LogLevel)
	}
	log.Info("config file: %s", viper.ConfigFileUsed())

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("vxindex needs a terminal")
	}

	app, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return fmt.Errorf("could not start: %w", err)
	}
	return app.Run(newDemo(cfg))
}
