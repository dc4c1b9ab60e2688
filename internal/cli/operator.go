package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PhelGc/fermenta/internal/database"
)

func newOperatorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage operators stored in the configured database",
	}

	withDB := func(fn func(db *database.Client, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			db, err := database.NewClient(a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.CreateOperatorsTable(); err != nil {
				return err
			}
			return fn(db, cmd, args)
		}
	}

	var password string
	add := &cobra.Command{
		Use:   "add <username>",
		Short: "Add an operator or replace its password",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(db *database.Client, cmd *cobra.Command, args []string) error {
			if password == "" {
				p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				var err error
				if password, err = p.secret("Enter password for " + args[0] + ": "); err != nil {
					return err
				}
			}
			if err := db.UpsertOperator(args[0], password); err != nil {
				return err
			}
			a.logger.Info("operador guardado", zap.String("username", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Operator %s saved.\n", args[0])
			return nil
		}),
	}
	add.Flags().StringVarP(&password, "password", "p", "", "password (prompted when empty)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List operators",
		Args:  cobra.NoArgs,
		RunE: withDB(func(db *database.Client, cmd *cobra.Command, _ []string) error {
			operators, err := db.ListOperators()
			if err != nil {
				return err
			}
			for _, op := range operators {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", op.Username, op.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		}),
	}

	remove := &cobra.Command{
		Use:   "remove <username>",
		Short: "Remove an operator",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(db *database.Client, cmd *cobra.Command, args []string) error {
			deleted, err := db.DeleteOperator(args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("operator %s not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Operator %s removed.\n", args[0])
			return nil
		}),
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}
