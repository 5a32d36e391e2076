package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lifeview/internal/app"
	"lifeview/internal/core"
	_ "lifeview/pkg/sims/life"
)

var (
	cfg        = app.NewConfig()
	configFile string
	frames     int
	gens       int
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "lifeview",
		Short:             "cellular automaton viewer",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runTerminal,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cfg.Bind(rootCmd.PersistentFlags())

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the ebiten window",
		RunE:  runGUI,
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run in the terminal",
		RunE:  runTerminal,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run frames headless and report frame rates",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 300, "frames to run")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write a PNG of the grid after some generations",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&gens, "generations", 0, "generations to step before rendering")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "lifeview.png", "output file")

	enginesCmd := &cobra.Command{
		Use:   "engines",
		Short: "list registered engines",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.EngineNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(guiCmd, termCmd, benchCmd, snapshotCmd, enginesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config, then re-applies any flags set explicitly on the
// command line so they win over the file.
func loadConfig(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		flags := cmd.Flags()
		explicit := map[string]string{}
		flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = f.Value.String() })

		loaded, err := app.Load(configFile)
		if err != nil {
			return err
		}
		*cfg = *loaded
		for name, value := range explicit {
			if err := flags.Set(name, value); err != nil {
				return err
			}
		}
	}
	return cfg.Validate()
}

func runGUI(cmd *cobra.Command, args []string) error {
	engine, f, err := app.NewEngine(cfg)
	if err != nil {
		return err
	}
	return app.RunGUI(cfg, engine, f)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	engine, f, err := app.NewEngine(cfg)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Engine debug output would tear the terminal UI.
	log.SetOutput(io.Discard)
	return app.NewTerminal(screen, cfg, engine, f).Run()
}

func runBench(cmd *cobra.Command, args []string) error {
	res, err := app.Bench(cfg, frames)
	if err != nil {
		return err
	}
	fmt.Println(app.FormatBench(cfg, res))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if err := app.Snapshot(cfg, gens, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", outFile)
	return nil
}
