package main

import (
	"fmt"
	"os"

	"crt-scope.dev/internal/app"
	"crt-scope.dev/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagDt         float64
	flagFPS        int
	flagTrail      int
	flagSinusoidal bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crt-scope",
		Short: "CRT Scope - Terminal cathode-ray tube beam simulator",
		Long: `CRT Scope simulates the deflection of an electron beam in a cathode-ray
tube, driven either by manually set plate voltages or by two independent
sinusoidal channels producing Lissajous figures.

The beam spot, its phosphor trail, and the recent voltage traces are drawn
as an ASCII oscilloscope with a phosphor-green aesthetic. A target phase
difference between the two channels is held invariant across frequency and
phase edits.`,
		RunE: run,
	}

	rootCmd.Flags().Float64Var(&flagDt, "dt", config.DefaultDt, "Simulated seconds per tick")
	rootCmd.Flags().IntVar(&flagFPS, "fps", config.TargetFPS, "Target frames (ticks) per second")
	rootCmd.Flags().IntVar(&flagTrail, "trail", config.DefaultTrailCap, "Trail capacity in points")
	rootCmd.Flags().BoolVar(&flagSinusoidal, "sinusoidal", false, "Start in sinusoidal (Lissajous) mode")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagDt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", flagDt)
	}
	if flagFPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", flagFPS)
	}
	if flagTrail < config.TrailCapMin || flagTrail > config.TrailCapMax {
		return fmt.Errorf("trail must be in [%d, %d], got %d",
			config.TrailCapMin, config.TrailCapMax, flagTrail)
	}

	model := app.New(flagDt, flagFPS, flagTrail, flagSinusoidal)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(flagFPS),
	)

	_, err := p.Run()
	return err
}
