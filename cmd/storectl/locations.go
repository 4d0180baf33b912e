package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/storefront-api/internal/infrastructure/locations"
)

func (c *cli) locationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Dataset de regiones, provincias y ciudades de Filipinas",
	}
	cmd.AddCommand(c.locationsUpdateCmd())
	return cmd
}

func (c *cli) locationsUpdateCmd() *cobra.Command {
	var outPath, sqlPath, url string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Descargar el dataset, descartar barangays y escribir el JSON compacto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := locations.NewFetcher(url).Fetch(cmd.Context())
			if err != nil {
				return err
			}
			if err := writeFile(outPath, func(f *os.File) error { return locations.WriteJSON(f, regions) }); err != nil {
				return err
			}
			cities := locations.Cities(regions)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d regiones, %d ciudades -> %s\n", len(regions), len(cities), outPath)

			if sqlPath != "" {
				if err := writeFile(sqlPath, func(f *os.File) error { return locations.WriteCitiesSQL(f, regions) }); err != nil {
					return err
				}
				fmt.Fprintf(out, "semilla ph_cities -> %s\n", sqlPath)
			}
			c.log.Info().Int("regions", len(regions)).Int("cities", len(cities)).Msg("dataset de ubicaciones actualizado")
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "archivo JSON de salida")
	cmd.Flags().StringVar(&sqlPath, "sql", "", "archivo SQL opcional con la semilla de ph_cities")
	cmd.Flags().StringVar(&url, "url", locations.DefaultURL, "URL del dataset de origen")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func writeFile(path string, write func(f *os.File) error) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); retErr == nil {
			retErr = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
