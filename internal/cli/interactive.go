package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PhelGc/fermenta/internal/auth"
	"github.com/PhelGc/fermenta/internal/evaluator"
	"github.com/PhelGc/fermenta/internal/reference"
	"github.com/PhelGc/fermenta/internal/source"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Log in and use the menu to run batch files or enter parameters by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verifier, cleanup, err := a.verifier()
			if err != nil {
				return err
			}
			defer cleanup()

			err = a.interactive(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), verifier)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		},
	}
}

func (a *app) interactive(p *prompter, verifier auth.Verifier) error {
	username, err := p.line("Enter admin username: ")
	if err != nil {
		return err
	}
	password, err := p.secret("Enter admin password: ")
	if err != nil {
		return err
	}

	if !verifier.Verify(username, password) {
		a.logger.Info("acceso denegado", zap.String("username", username))
		fmt.Fprintln(p.out, "Access denied. Incorrect credentials. Exiting program.")
		return nil
	}

	for {
		fmt.Fprint(p.out, "\n=== Ethanol Production System ===\n1. Run Test Cases\n2. Enter Parameters Manually\n3. Exit\n")
		choice, err := p.line("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := p.line("Enter the test case file name: ")
			if err != nil {
				return err
			}
			if err := a.runBatch(p.out, source.NewFile(name), verifier, batchOptions{}); err != nil {
				a.logger.Warn("error evaluando lote", zap.String("file", name), zap.Error(err))
				fmt.Fprintln(p.out, "Error: Could not open test case file!")
			}
		case "2":
			if err := a.manualEntry(p); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(p.out, "Exiting the system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(p.out, "Invalid choice. Please try again.")
		}
	}
}

// manualEntry pide los seis parámetros y muestra el resultado
func (a *app) manualEntry(p *prompter) error {
	sugars := make([]string, 0, len(reference.Sugars()))
	for _, s := range reference.Sugars() {
		sugars = append(sugars, s.String())
	}
	yeasts := make([]string, 0, len(reference.Yeasts()))
	for _, y := range reference.Yeasts() {
		yeasts = append(yeasts, y.String())
	}

	var params evaluator.ProductionParameters
	var err error

	if params.SugarType, err = p.line(fmt.Sprintf("Enter type of sugar component (%s): ", strings.Join(sugars, ", "))); err != nil {
		return err
	}
	if params.YeastType, err = p.line(fmt.Sprintf("Enter type of yeast (%s): ", strings.Join(yeasts, ", "))); err != nil {
		return err
	}
	if params.SugarMassGrams, err = p.number("Enter amount of sugar in grams: "); err != nil {
		return err
	}
	if params.YeastMassGrams, err = p.number("Enter amount of yeast in grams: "); err != nil {
		return err
	}
	if params.FermentationHours, err = p.number("Enter fermentation time in hours: "); err != nil {
		return err
	}
	if params.DistillationTempC, err = p.number("Enter distillation temperature in degrees Celsius: "); err != nil {
		return err
	}

	r, err := a.renderer(p.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out)
	return r.Result(p.out, params, a.engine.Score(params))
}
