// Package cli define los comandos de fermenta
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/PhelGc/fermenta/internal/auth"
	"github.com/PhelGc/fermenta/internal/config"
	"github.com/PhelGc/fermenta/internal/database"
	"github.com/PhelGc/fermenta/internal/evaluator"
	"github.com/PhelGc/fermenta/internal/logging"
	"github.com/PhelGc/fermenta/internal/reference"
	"github.com/PhelGc/fermenta/internal/render"
)

// app estado compartido por los comandos, armado en PersistentPreRunE
type app struct {
	configPath string
	logLevel   string
	format     string
	colorMode  string

	cfg    *config.Config
	logger *zap.Logger
	engine *evaluator.Engine
}

// NewRootCmd construye el árbol de comandos
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fermenta",
		Short:         "Ethanol fermentation efficiency advisor",
		Long:          `fermenta scores simulated ethanol fermentation runs and suggests how to tune them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file (default $FERMENTA_CONFIG)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug|info|warn|error)")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", render.FormatText, "output format (text|json|yaml)")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize text output (auto|on|off)")

	root.AddCommand(
		newBatchCmd(a),
		newScoreCmd(a),
		newInteractiveCmd(a),
		newSimulateCmd(a),
		newOperatorCmd(a),
	)
	return root
}

// Execute ejecuta el comando raíz y devuelve el código de salida
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("error cargando configuración: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	// Las tablas se construyen una sola vez y se comparten entre evaluaciones
	a.engine = evaluator.NewEngine(reference.Default())
	return nil
}

// renderer devuelve el renderizador pedido por --format y --color
func (a *app) renderer(out io.Writer) (render.Renderer, error) {
	var useColor bool
	switch a.colorMode {
	case "on":
		useColor = true
	case "off":
		useColor = false
	case "auto", "":
		f, ok := out.(*os.File)
		useColor = ok && term.IsTerminal(int(f.Fd()))
	default:
		return nil, fmt.Errorf("valor de --color inválido: %q", a.colorMode)
	}
	return render.New(a.format, useColor)
}

// verifier arma el verificador configurado. La función devuelta libera la conexión a la
// base cuando el backend es database.
func (a *app) verifier() (auth.Verifier, func(), error) {
	if a.cfg.Auth.Backend != config.AuthBackendDatabase {
		return auth.NewStatic(a.cfg.Auth.Username, a.cfg.Auth.Password), func() {}, nil
	}

	db, err := database.NewClient(a.cfg.Database, a.logger)
	if err != nil {
		return nil, nil, err
	}
	if err := db.CreateOperatorsTable(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}
