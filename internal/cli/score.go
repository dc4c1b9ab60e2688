package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/PhelGc/fermenta/internal/evaluator"
)

// errAccessDenied credenciales rechazadas fuera del modo lote
var errAccessDenied = errors.New("access denied: incorrect credentials")

func newScoreCmd(a *app) *cobra.Command {
	var (
		username string
		password string
		params   evaluator.ProductionParameters
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single run given as flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verifier, cleanup, err := a.verifier()
			if err != nil {
				return err
			}
			defer cleanup()

			if !verifier.Verify(username, password) {
				return errAccessDenied
			}

			out := cmd.OutOrStdout()
			r, err := a.renderer(out)
			if err != nil {
				return err
			}
			return r.Result(out, params, a.engine.Score(params))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&username, "username", "u", "", "operator username")
	f.StringVarP(&password, "password", "p", "", "operator password")
	f.StringVar(&params.SugarType, "sugar", "", "sugar type (glucose, sucrose, fructose, maltose, lactose)")
	f.StringVar(&params.YeastType, "yeast", "", "yeast type, e.g. \"Saccharomyces cerevisiae\"")
	f.Float64Var(&params.SugarMassGrams, "sugar-mass", 0, "sugar mass in grams")
	f.Float64Var(&params.YeastMassGrams, "yeast-mass", 0, "yeast mass in grams")
	f.Float64Var(&params.FermentationHours, "hours", 0, "fermentation time in hours")
	f.Float64Var(&params.DistillationTempC, "temp", 0, "distillation temperature in degrees Celsius")
	return cmd
}
