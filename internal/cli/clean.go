package cli

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	// Register the WebP decoder for scanned pages saved in that format.
	_ "golang.org/x/image/webp"

	"github.com/inkfold/panelist/border"
)

// newCleanCmd builds the clean subcommand: border removal for a single
// panel image file.
func newCleanCmd(configPath *string) *cobra.Command {
	var (
		output     string
		searchZone float64
		padding    int
	)

	cmd := &cobra.Command{
		Use:   "clean <panel-image>",
		Short: "Remove the drawn border line from a panel image",
		Long: `Clean removes the outer border line from an isolated panel image,
preserving interior content including speech bubbles that touch the
frame. When no closed border is found the image is written unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("search-zone") {
				searchZone = config.SearchZone
			}
			if !cmd.Flags().Changed("padding") {
				padding = config.Padding
			}

			img, err := imaging.Open(args[0], imaging.AutoOrientation(true))
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			logger.Debugf("loaded %s (%dx%d)", args[0], img.Bounds().Dx(), img.Bounds().Dy())

			cleanerConfig := border.DefaultCleanerConfig()
			cleanerConfig.SearchZoneRatio = searchZone
			cleanerConfig.InternalPadding = padding

			cleaned := border.NewCleanerWithConfig(cleanerConfig).Clean(img)
			if cleaned == img {
				logger.Warn("no border found; writing the image unchanged")
			} else {
				logger.Infof("cropped to %dx%d", cleaned.Bounds().Dx(), cleaned.Bounds().Dy())
			}

			if err := imaging.Save(cleaned, output); err != nil {
				return fmt.Errorf("failed to save %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path (required)")
	cmd.Flags().Float64Var(&searchZone, "search-zone", 0.25, "border search depth as a fraction of the panel dimension")
	cmd.Flags().IntVar(&padding, "padding", 5, "extra pixels cleared inside the detected border")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
