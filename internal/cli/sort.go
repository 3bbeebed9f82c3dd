package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkfold/panelist/layout"
	"github.com/inkfold/panelist/model"
)

// newSortCmd builds the sort subcommand. It reads a JSON array of
// [x, y, w, h] bounding boxes and writes them back in reading order.
func newSortCmd(configPath *string) *cobra.Command {
	var (
		rtl     bool
		output  string
		indices bool
	)

	cmd := &cobra.Command{
		Use:   "sort <regions.json>",
		Short: "Order panel regions into reading order",
		Long: `Sort reads a JSON array of panel bounding boxes, each a four-element
array [x, y, w, h] in page pixel coordinates, and writes the same boxes
reordered into human reading order: top to bottom, then left to right,
or right to left with --rtl.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rtl") {
				rtl = config.RightToLeft
			}

			regions, err := readRegions(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("read %d regions from %s", len(regions), args[0])

			sortConfig := layout.DefaultSortConfig()
			if rtl {
				sortConfig.Direction = layout.RightToLeft
			}
			sortConfig.Columns.SpanningWidthRatio = config.SpanningRatio
			sortConfig.Columns.GapToleranceFactor = config.GapFactor

			sorter := layout.NewSorterWithConfig(sortConfig)
			order, err := sorter.SortIndices(regions)
			if err != nil {
				return fmt.Errorf("failed to sort regions: %w", err)
			}
			logger.Infof("sorted %d panels (%s)", len(order), sortConfig.Direction)

			if indices {
				return writeJSON(output, order)
			}
			ordered := make([][4]int, len(order))
			for i, idx := range order {
				r := regions[idx]
				ordered[i] = [4]int{r.X, r.Y, r.Width, r.Height}
			}
			return writeJSON(output, ordered)
		},
	}

	cmd.Flags().BoolVar(&rtl, "rtl", false, "read columns right to left (manga order)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write result to a file instead of stdout")
	cmd.Flags().BoolVar(&indices, "indices", false, "output the permutation as input indices instead of boxes")

	return cmd
}

// readRegions decodes a JSON array of [x, y, w, h] boxes.
func readRegions(path string) ([]model.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regions: %w", err)
	}

	var boxes [][4]int
	if err := json.Unmarshal(data, &boxes); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	regions := make([]model.Region, len(boxes))
	for i, b := range boxes {
		regions[i] = model.NewRegion(b[0], b[1], b[2], b[3])
	}
	return regions, nil
}

// writeJSON marshals v to the given file, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
