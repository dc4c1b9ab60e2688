package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PhelGc/fermenta/internal/render"
	"github.com/PhelGc/fermenta/internal/simulate"
)

func newSimulateCmd(a *app) *cobra.Command {
	cfg := simulate.DefaultConfig()
	var mode string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Score a series of randomly generated runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Mode = simulate.Mode(mode)

			steps, err := simulate.Run(a.engine, cfg)
			if err != nil {
				return err
			}
			stats := simulate.Summarize(steps)
			a.logger.Debug("simulación terminada",
				zap.String("mode", mode),
				zap.Int64("seed", cfg.Seed),
				zap.Float64("mean", stats.Mean),
			)

			out := cmd.OutOrStdout()
			r, err := a.renderer(out)
			if err != nil {
				return err
			}
			return r.Simulation(out, render.SimulationDocument{
				Mode:  cfg.Mode,
				Seed:  cfg.Seed,
				Stats: stats,
				Steps: steps,
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Steps, "steps", cfg.Steps, "number of steps")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	f.StringVar(&mode, "mode", string(cfg.Mode), "parameter generation mode (uniform|drift)")
	f.Float64Var(&cfg.Frequency, "frequency", cfg.Frequency, "noise advance per step in drift mode")
	return cmd
}
