package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"audit-report/internal/discover"
	"audit-report/internal/media"
	"audit-report/internal/model"
	"audit-report/internal/pipeline"
)

var (
	renderOut    string
	renderImages string
	renderLogo   string
)

var renderCmd = &cobra.Command{
	Use:   "render <csv>",
	Short: "Render a single CSV export",
	Long: `Renders one CSV export. Photos are looked up next to the CSV unless
--images names another directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "Output file (default: <output_dir>/<csv-stem><output_suffix>)")
	renderCmd.Flags().StringVar(&renderImages, "images", "", "Directory holding the referenced photos")
	renderCmd.Flags().StringVar(&renderLogo, "logo", "", "Logo image embedded in the header")
	renderCmd.Flags().BoolVar(&ciMode, "ci", false, "Print a JSON summary instead of text")
	renderCmd.Flags().IntVar(&maxNonCompliant, "max-noncompliant", -1, "Exit with code 2 when the report has more non-compliant items (-1 disables)")
}

func runRender(cmd *cobra.Command, args []string) error {
	csv := args[0]
	opts, err := pipeline.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	if renderLogo != "" {
		opts.Logo = media.LoadLogo(renderLogo, logger)
	}
	job := pipeline.Job{
		CSV:      csv,
		ImageDir: renderImages,
		Output:   renderOut,
	}
	if job.ImageDir == "" {
		job.ImageDir = filepath.Dir(csv)
	}
	if job.Output == "" {
		job.Output = filepath.Join(cfg.OutputDir, discover.OutputName(csv, cfg.OutputSuffix))
	}

	sum, err := pipeline.New(opts, logger).Generate(job)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), sum, ciMode)
	return checkPolicy([]*model.RunSummary{sum})
}
