package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/abhisek/learntrace/internal/catalog"
	"github.com/abhisek/learntrace/internal/generate"
	"github.com/abhisek/learntrace/internal/profile"
	"github.com/abhisek/learntrace/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a learning history bundle for one learner",
	Long: `Generate a complete learning history bundle from a learner profile.

The profile comes from a JSON file (--profile) or from built-in defaults for
a seeded demo learner (--learner). With --out the bundle is written as JSON;
otherwise it is persisted to the SQLite database.`,
	RunE: runGenerate,
}

func init() {
	addProfileFlags(generateCmd)
	generateCmd.Flags().String("out", "", "Write bundle JSON to this file ('-' for stdout) instead of the database")
}

// addProfileFlags registers the flags shared by generate and preview.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", "", "Path to a learner profile JSON file")
	cmd.Flags().String("learner", "", "Seeded learner ID to use with a default profile")
	cmd.Flags().Uint64("seed", 0, "Random seed (default: derived from current time)")
	cmd.Flags().Int("months", 0, "Override the profile's time range in months")
}

// buildProfile resolves the profile from --profile or --learner and applies
// the --months override.
func buildProfile(cmd *cobra.Command) (profile.Profile, error) {
	path, _ := cmd.Flags().GetString("profile")
	learner, _ := cmd.Flags().GetString("learner")

	var prof profile.Profile
	switch {
	case path != "" && learner != "":
		return prof, fmt.Errorf("use --profile or --learner, not both")
	case path != "":
		var err error
		prof, err = profile.Load(path)
		if err != nil {
			return prof, fmt.Errorf("load profile: %w", err)
		}
	case learner != "":
		prof = profile.Default(learner)
	default:
		return prof, fmt.Errorf("either --profile or --learner is required")
	}

	if months, _ := cmd.Flags().GetInt("months"); months > 0 {
		prof.TimeRangeMonths = months
	}
	return prof, nil
}

// newRNG builds the generation random source from --seed.
func newRNG(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetUint64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prof, err := buildProfile(cmd)
	if err != nil {
		return err
	}

	gen := generate.New(catalog.NewSeeded())
	bundle, err := gen.Generate(cmd.Context(), prof, newRNG(cmd))
	if err != nil {
		return fmt.Errorf("generate bundle: %w", err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if err := writeBundleJSON(bundle, out); err != nil {
			return err
		}
	} else {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SaveBundle(cmd.Context(), bundle); err != nil {
			return fmt.Errorf("save bundle: %w", err)
		}
	}

	printCounts(bundle)
	return nil
}

func writeBundleJSON(bundle *generate.Bundle, out string) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	data = append(data, '\n')

	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	return nil
}

func printCounts(bundle *generate.Bundle) {
	c := bundle.Counts()
	fmt.Fprintf(os.Stderr,
		"Generated for %s: %d plans, %d activities, %d records, %d interactions, %d resources, %d help requests, %d achievements\n",
		bundle.Learner.ID, c.Plans, c.Activities, c.Records,
		c.Interactions, c.Resources, c.HelpRequests, c.Achievements)
}
