package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PhelGc/fermenta/internal/auth"
	"github.com/PhelGc/fermenta/internal/batch"
	"github.com/PhelGc/fermenta/internal/discord"
	"github.com/PhelGc/fermenta/internal/render"
	"github.com/PhelGc/fermenta/internal/report"
	"github.com/PhelGc/fermenta/internal/source"
)

type batchOptions struct {
	saveReport  bool
	notify      bool
	spacedYeast bool
}

func newBatchCmd(a *app) *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch <file|url|->",
		Short: "Evaluate a batch file, one run per line",
		Long: `Each line holds eight whitespace-separated fields:
  username password sugarType yeastType sugarMassGrams yeastMassGrams fermentationHours distillationTempC
Malformed lines are skipped. Lines with wrong credentials are reported as denied.
Yeast names must match the table exactly; --underscore-yeast reads
"Saccharomyces_cerevisiae" as "Saccharomyces cerevisiae".
Use "-" to read the batch from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, cleanup, err := a.verifier()
			if err != nil {
				return err
			}
			defer cleanup()

			return a.runBatch(cmd.OutOrStdout(), source.Open(args[0], a.cfg.Source, cmd.InOrStdin()), verifier, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.saveReport, "report", false, "write a JSON report under the configured report path")
	cmd.Flags().BoolVar(&opts.notify, "notify", false, "post a summary to the configured Discord channel")
	cmd.Flags().BoolVar(&opts.spacedYeast, "underscore-yeast", false, "treat underscores in yeast names as spaces")
	return cmd
}

// runBatch lee la fuente, evalúa y muestra el resultado. Solo falla si la
// fuente no se puede leer o si falla alguna salida pedida.
func (a *app) runBatch(out io.Writer, src source.LineSource, verifier auth.Verifier, opts batchOptions) error {
	lines, err := src.Lines()
	if err != nil {
		return err
	}

	ev := batch.NewEvaluator(a.engine, verifier)
	if opts.spacedYeast {
		ev.NormalizeYeast = batch.SpacedYeast
	}
	ev.OnSkip = func(lineNo int, _ string) {
		a.logger.Debug("línea omitida", zap.String("source", src.Name()), zap.Int("line", lineNo))
	}
	outcomes := ev.Evaluate(lines)
	summary := batch.Summarize(len(lines), outcomes)

	a.logger.Info("lote evaluado",
		zap.String("source", src.Name()),
		zap.Int("lines", summary.Lines),
		zap.Int("scored", summary.Scored),
		zap.Int("rejected", summary.Rejected),
		zap.Int("skipped", summary.Skipped),
	)

	doc := render.BatchDocument{
		Source:     src.Name(),
		Thresholds: a.engine.Thresholds(),
		Summary:    summary,
		Outcomes:   outcomes,
	}

	r, err := a.renderer(out)
	if err != nil {
		return err
	}
	if err := r.Batch(out, doc); err != nil {
		return err
	}

	rep := report.New(doc)
	if opts.saveReport {
		store, err := report.NewStore(a.cfg.Report.BasePath)
		if err != nil {
			return err
		}
		path, err := store.Save(rep)
		if err != nil {
			return err
		}
		a.logger.Info("reporte guardado", zap.String("path", path), zap.String("run_id", rep.RunID))
	}

	if opts.notify {
		a.notify(src.Name(), rep.RunID, summary)
	}
	return nil
}

// notify publica el resumen en Discord. Un fallo aquí no invalida el lote.
func (a *app) notify(sourceName, runID string, summary batch.Summary) {
	if !a.cfg.DiscordEnabled() {
		a.logger.Warn("notificación pedida sin DISCORD_BOT_TOKEN/DISCORD_CHANNEL_ID, se omite")
		return
	}

	client, err := discord.NewClient(&discord.Config{BotToken: a.cfg.Discord.BotToken, ChannelID: a.cfg.Discord.ChannelID})
	if err != nil {
		a.logger.Warn("error creando cliente Discord", zap.Error(err))
		return
	}
	defer client.Close()

	messageID, err := client.SendBatchSummary(sourceName, runID, summary)
	if err != nil {
		a.logger.Warn("error notificando lote", zap.Error(err))
		return
	}
	a.logger.Info("resumen publicado en Discord", zap.String("message_id", messageID))
}
