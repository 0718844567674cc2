package migrate

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/infrastructure/config"
	"github.com/tinytickets/tinytickets/internal/infrastructure/database"
	"github.com/tinytickets/tinytickets/internal/infrastructure/migration"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type options struct {
	env        string
	configPath string
	steps      int
}

// NewCommand groups the schema maintenance subcommands.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the ticket database schema",
		Long:  `Apply, roll back and inspect the SQL scripts embedded in the binary.`,
	}
	cmd.PersistentFlags().StringVarP(&opts.env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending script",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withDatabase(func(log logger.Interface, db *gorm.DB) error {
				log.Infow("applying migrations", "environment", opts.env)
				return migration.NewGolangMigrateStrategy(log).Migrate(db)
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Revert the newest scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", opts.steps)
			}
			return opts.withDatabase(func(log logger.Interface, db *gorm.DB) error {
				log.Infow("reverting migrations", "environment", opts.env, "steps", opts.steps)
				return migration.NewGolangMigrateStrategy(log).MigrateDown(db, opts.steps)
			})
		},
	}
	down.Flags().IntVarP(&opts.steps, "steps", "n", 1, "Number of scripts to revert")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withDatabase(func(log logger.Interface, db *gorm.DB) error {
				st, err := migration.NewGolangMigrateStrategy(log).Status(db)
				if err != nil {
					return err
				}
				return printStatus(cmd.OutOrStdout(), opts.env, st)
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

// withDatabase loads configuration, opens the database and hands both to fn.
func (o *options) withDatabase(fn func(log logger.Interface, db *gorm.DB) error) error {
	cfg, err := config.Load(o.env, o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.DebugMode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()

	log := logger.NewLogger().With("command", "migrate")
	if err := fn(log, database.Get()); err != nil {
		log.Errorw("migrate command failed", "error", err)
		return err
	}
	return nil
}

func printStatus(w io.Writer, env string, st *migration.Status) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "environment\t%s\n", env)
	fmt.Fprintf(tw, "version\t%d\n", st.Version)
	fmt.Fprintf(tw, "latest\t%d\n", st.Latest)
	fmt.Fprintf(tw, "pending\t%d\n", st.Pending)
	fmt.Fprintf(tw, "dirty\t%t\n", st.Dirty)
	return tw.Flush()
}
