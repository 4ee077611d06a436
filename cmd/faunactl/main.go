// faunactl inspecciona el almacenamiento local sin levantar la API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fauna-field-log/internal/adapters/storage/backend"
	"fauna-field-log/internal/adapters/storage/kvrepo"
	"fauna-field-log/internal/config"
	"fauna-field-log/internal/domain/captures"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/storage"
)

// cli es el estado compartido por los subcomandos.
type cli struct {
	storage    config.StorageConfig
	timezone   string
	jsonOutput bool

	out io.Writer
	log logger.Logger

	kv       storage.KV
	captures *captures.Service
	loc      *time.Location
	now      func() time.Time
}

func newRootCmd(c *cli) *cobra.Command {
	defaults := config.Default()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}

	root := &cobra.Command{
		Use:           "faunactl <command>",
		Short:         "Inspect the fauna field log storage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{Storage: c.storage, Timezone: c.timezone}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			c.loc = loc

			kv, err := backend.Open(cmd.Context(), c.storage, c.log)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			c.kv = kv
			c.captures = captures.NewService(kvrepo.NewCapturesRepo(kv, c.log), captures.Options{
				Logger:   c.log,
				Location: loc,
			})
			return nil
		},
	}
	root.SetOut(c.out)

	root.PersistentFlags().StringVar(&c.storage.Driver, "storage", defaults.Storage.Driver, "storage driver (bbolt, sqlite, postgres, memory)")
	root.PersistentFlags().StringVar(&c.storage.Path, "data", defaults.Storage.Path, "data file for bbolt/sqlite")
	root.PersistentFlags().StringVar(&c.storage.DSN, "dsn", defaults.Storage.DSN, "postgres DSN")
	root.PersistentFlags().StringVar(&c.timezone, "timezone", defaults.Timezone, "timezone for date windows")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "output as JSON")

	c.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(defaults.Logging.Level),
		Format: logger.ParseFormat(defaults.Logging.Format),
		App:    "faunactl",
		Output: os.Stderr,
	})

	root.AddCommand(newListCmd(c), newSummaryCmd(c), newDeleteCmd(c))
	return root
}

// execute corre un comando y cierra el storage aunque el comando falle
// (cobra no llama a PostRun cuando RunE devuelve error).
func execute(ctx context.Context, out io.Writer, args []string) error {
	c := &cli{out: out, now: time.Now}
	root := newRootCmd(c)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if c.kv != nil {
		_ = c.kv.Close()
	}
	return err
}

func main() {
	if err := execute(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
