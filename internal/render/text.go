package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/PhelGc/fermenta/internal/batch"
	"github.com/PhelGc/fermenta/internal/evaluator"
)

// Text formato legible, con color opcional por nivel
type Text struct {
	tierColors map[evaluator.Tier]*color.Color
	plain      *color.Color
}

// NewText crea el renderizador de texto
func NewText(enableColor bool) *Text {
	t := &Text{
		tierColors: map[evaluator.Tier]*color.Color{
			evaluator.TierOptimal:      color.New(color.FgGreen, color.Bold),
			evaluator.TierSatisfactory: color.New(color.FgYellow, color.Bold),
			evaluator.TierLow:          color.New(color.FgRed, color.Bold),
		},
		plain: color.New(),
	}
	t.plain.DisableColor()
	for _, c := range t.tierColors {
		if enableColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// formatScore usa 6 cifras significativas: 187.2, 112.32, 99.84
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', 6, 64)
}

func (t *Text) tier(tier evaluator.Tier) *color.Color {
	if c, ok := t.tierColors[tier]; ok {
		return c
	}
	return t.plain
}

// Result imprime un resultado individual
func (t *Text) Result(w io.Writer, _ evaluator.ProductionParameters, result evaluator.Result) error {
	c := t.tier(result.Tier)
	if _, err := fmt.Fprintf(w, "Ethanol Production Efficiency Score: %s%%\n", c.Sprint(formatScore(result.Score))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, c.Sprint(result.Tier.Headline())); err != nil {
		return err
	}
	if len(result.Advisories) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Suggestions for optimizing ethanol production:"); err != nil {
		return err
	}
	for _, a := range result.Advisories {
		if _, err := fmt.Fprintf(w, " - %s\n", a.Message); err != nil {
			return err
		}
	}
	return nil
}

// Batch imprime cada resultado del lote y un resumen final
func (t *Text) Batch(w io.Writer, doc BatchDocument) error {
	for _, o := range doc.Outcomes {
		if _, err := fmt.Fprintf(w, "Running test case with user: %s (line %d)\n", o.Username, o.Line); err != nil {
			return err
		}
		if o.Status != batch.StatusScored || o.Result == nil {
			if _, err := fmt.Fprint(w, "Access denied. Incorrect credentials.\n\n"); err != nil {
				return err
			}
			continue
		}
		if err := t.Result(w, *o.Params, *o.Result); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "\n--- Test Case End ---\n\n"); err != nil {
			return err
		}
	}

	s := doc.Summary
	_, err := fmt.Fprintf(w, "%s: %s lines, %s scored, %s rejected, %s skipped (%s %s, %s %s, %s %s)\n",
		doc.Source,
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Scored)),
		humanize.Comma(int64(s.Rejected)),
		humanize.Comma(int64(s.Skipped)),
		t.tier(evaluator.TierOptimal).Sprint(evaluator.TierOptimal), humanize.Comma(int64(s.Optimal)),
		t.tier(evaluator.TierSatisfactory).Sprint(evaluator.TierSatisfactory), humanize.Comma(int64(s.Satisfactory)),
		t.tier(evaluator.TierLow).Sprint(evaluator.TierLow), humanize.Comma(int64(s.Low)),
	)
	return err
}

// Simulation imprime la serie como tabla
func (t *Text) Simulation(w io.Writer, doc SimulationDocument) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSUGAR\tYEAST\tSUGAR g\tYEAST g\tHOURS\tTEMP C\tSCORE\tTIER")
	for _, step := range doc.Steps {
		p := step.Params
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\t%s\n",
			step.Index, p.SugarType, p.YeastType,
			p.SugarMassGrams, p.YeastMassGrams, p.FermentationHours, p.DistillationTempC,
			formatScore(step.Result.Score), step.Result.Tier)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s steps (%s, seed %d): min %s, max %s, mean %s\n",
		humanize.Comma(int64(doc.Stats.Steps)), doc.Mode, doc.Seed,
		formatScore(doc.Stats.Min), formatScore(doc.Stats.Max), formatScore(doc.Stats.Mean))
	return err
}
