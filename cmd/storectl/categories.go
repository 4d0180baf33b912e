package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/sqlite"
)

func (c *cli) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspeccionar categorías y probar el resolver de slugs",
	}
	cmd.AddCommand(
		c.categoriesListCmd(),
		c.categoriesDuplicatesCmd(),
		c.categoriesResolveCmd(),
		c.categoriesVerifyCmd(),
		c.categoriesSnapshotCmd(),
	)
	return cmd
}

func (c *cli) categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Tabla ID | Name | Slug | Parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.fetchRows(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			idx := catalog.NewIndex(rows)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSLUG\tPARENT")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Slug, orDash(idx.ParentName(r)))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d categorías\n", len(rows))
			return nil
		},
	}
}

func (c *cli) categoriesDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "Grupos de filas que comparten nombre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.fetchRows(cmd.Context())
			if err != nil {
				return err
			}
			writeDuplicates(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func writeDuplicates(w io.Writer, rows []entity.Category) {
	groups := catalog.FindDuplicateNames(rows)
	if len(groups) == 0 {
		fmt.Fprintln(w, "sin nombres duplicados")
		return
	}
	idx := catalog.NewIndex(rows)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%q (%d filas)\n", g.Name, len(g.Rows))
		for _, r := range g.Rows {
			fmt.Fprintf(w, "  - id: %s  slug: %s  padre: %s\n", r.ID, r.Slug, orDash(idx.ParentName(r)))
		}
	}
}

func (c *cli) categoriesResolveCmd() *cobra.Command {
	var category, subcategory string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolver ?category=&subcategory= a filas de categoría",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := c.resolver()
			if err != nil {
				return err
			}
			rows, err := c.fetchRows(cmd.Context())
			if err != nil {
				return err
			}
			res := resolver.ResolveDetailed(category, subcategory, rows)
			cat, sub := catalog.NormalizeSlug(category), catalog.NormalizeSlug(subcategory)
			names := catalog.NewIndex(rows).Names(res.IDs)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "category:    %s\n", cat)
			fmt.Fprintf(out, "subcategory: %s\n", orDash(sub))
			fmt.Fprintf(out, "strategy:    %s\n", res.Strategy)
			if len(res.IDs) == 0 {
				fmt.Fprintln(out, "ids:         (ninguno)")
				fmt.Fprintln(out, "el listado no se filtra por categoría")
				return nil
			}
			fmt.Fprintf(out, "ids:         %s\n", strings.Join(res.IDs, ", "))
			fmt.Fprintf(out, "names:       %s\n", strings.Join(names, ", "))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "slug de categoría (ej. men)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "slug de subcategoría (ej. denims)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func (c *cli) categoriesVerifyCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Resolver las URLs de marketing conocidas contra el catálogo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := c.resolver()
			if err != nil {
				return err
			}
			rows, err := c.fetchRows(cmd.Context())
			if err != nil {
				return err
			}
			idx := catalog.NewIndex(rows)
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "URL\tRESULT\tIDS\tSTRATEGY")
			resolved := 0
			for _, kc := range catalog.KnownCases {
				res := resolver.ResolveDetailed(kc.Category, kc.Subcategory, rows)
				if len(res.IDs) > 0 {
					resolved++
				}
				fmt.Fprintf(tw, "%s/%s\t%s\t%s\t%s\n",
					kc.Category, kc.Subcategory,
					orDash(strings.Join(idx.Names(res.IDs), ", ")),
					orDash(strings.Join(res.IDs, ", ")),
					res.Strategy)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d/%d casos resueltos\n", resolved, len(catalog.KnownCases))
			if strict && resolved < len(catalog.KnownCases) {
				return fmt.Errorf("%d casos sin resolver", len(catalog.KnownCases)-resolved)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "terminar con error si algún caso no se resuelve")
	return cmd
}

func (c *cli) categoriesSnapshotCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Guardar las categorías en un archivo SQLite local",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.fetchRows(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := sqlite.Open(outPath)
			if err != nil {
				return err
			}
			defer func() { _ = snap.Close() }()
			if err := snap.Save(cmd.Context(), rows, time.Now()); err != nil {
				return fmt.Errorf("guardar snapshot: %w", err)
			}
			c.log.Info().Int("rows", len(rows)).Str("path", outPath).Msg("snapshot guardado")
			fmt.Fprintf(cmd.OutOrStdout(), "%d categorías guardadas en %s\n", len(rows), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "archivo SQLite de salida")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (c *cli) fetchRows(ctx context.Context) ([]entity.Category, error) {
	src, closeFn, err := c.source()
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeFn() }()
	rows, err := src.FetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer categorías: %w", err)
	}
	return rows, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
