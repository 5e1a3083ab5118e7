package cmd

import (
	"fmt"

	"github.com/abhisek/learntrace/internal/app"
	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/generate"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse a freshly generated bundle in the terminal (no database)",
	Long: `Generate a bundle in memory and open an interactive browser over it.

This is a stateless tool for inspecting what a profile produces. Nothing is
written to the database.`,
	RunE: runPreview,
}

func init() {
	addProfileFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	prof, err := buildProfile(cmd)
	if err != nil {
		return err
	}

	gen := generate.New(catalog.NewSeeded())
	bundle, err := gen.Generate(cmd.Context(), prof, newRNG(cmd))
	if err != nil {
		return fmt.Errorf("generate bundle: %w", err)
	}

	return app.Run(bundle)
}
