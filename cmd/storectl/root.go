package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/storefront-api/internal/infrastructure/supabase"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// cli estado compartido por los subcomandos (flags persistentes y logger).
type cli struct {
	snapshotPath string
	synonymsPath string
	logLevel     string
	log          *logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: logger.Nop()}
	root := &cobra.Command{
		Use:   "storectl",
		Short: "Herramientas de desarrollo de la tienda",
		Long: `Herramientas de desarrollo de la tienda.

Las órdenes de categorías leen las filas del backend REST (SUPABASE_URL y
SUPABASE_ANON_KEY) o, con --snapshot, de un archivo SQLite local.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.log = logger.New(logger.Config{Env: "development", Level: c.logLevel, Out: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().StringVar(&c.snapshotPath, "snapshot", "", "leer categorías de este snapshot SQLite en lugar del backend")
	root.PersistentFlags().StringVar(&c.synonymsPath, "synonyms", "", "tabla de sinónimos YAML (por defecto la interna)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "nivel de log: debug, info, warn, error")

	root.AddCommand(c.categoriesCmd(), c.locationsCmd())
	return root
}

// source abre la fuente de categorías: snapshot local o backend REST.
func (c *cli) source() (repository.CategorySource, func() error, error) {
	if c.snapshotPath != "" {
		if _, err := os.Stat(c.snapshotPath); err != nil {
			return nil, nil, fmt.Errorf("snapshot %s: %w", c.snapshotPath, err)
		}
		snap, err := sqlite.Open(c.snapshotPath)
		if err != nil {
			return nil, nil, err
		}
		c.log.Debug().Str("path", c.snapshotPath).Msg("leyendo categorías del snapshot")
		return snap, snap.Close, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Supabase.Configured() {
		return nil, nil, errors.New("faltan SUPABASE_URL y SUPABASE_ANON_KEY (o use --snapshot)")
	}
	client, err := supabase.NewClient(supabase.ClientOpts{URL: cfg.Supabase.URL, AnonKey: cfg.Supabase.AnonKey})
	if err != nil {
		return nil, nil, err
	}
	c.log.Debug().Str("url", cfg.Supabase.URL).Msg("leyendo categorías del backend")
	return client, func() error { return nil }, nil
}

func (c *cli) resolver() (*catalog.Resolver, error) {
	if c.synonymsPath == "" {
		return catalog.NewResolver(nil), nil
	}
	table, err := catalog.LoadSynonymsFile(c.synonymsPath)
	if err != nil {
		return nil, err
	}
	return catalog.NewResolver(table), nil
}
