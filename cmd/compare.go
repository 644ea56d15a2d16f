/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorpi/colorspace"
	"github.com/mmuldo/colorpi/delta"
	"github.com/mmuldo/colorpi/report"
)

var (
	standardSample string
	testSample     string
	standardLab    string
	testLab        string
	showSwatch     bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Scores the Delta E between a standard and a test sample",
	Long: `Scores the Delta E between a standard and a test sample.

Samples are given as RGB (--standard/--test, "R,G,B" or "#rrggbb"), in which
case a full report is rendered, or directly as CIELAB (--standard-lab and
--test-lab, "L,a,b"), in which case only the scores are printed.

The report layout is a pongo2 template; --template (or "template" in the
config file) replaces the built-in one.`,
	Example: `  colorpi compare --standard 0,120,201 --test '#0076d2'
  colorpi compare --standard-lab 50,2.6772,-79.7751 --test-lab 50,0,-82.7485 --metric ciede2000`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&standardSample, "standard", "", "standard sample as R,G,B or #rrggbb")
	compareCmd.Flags().StringVar(&testSample, "test", "", "test sample as R,G,B or #rrggbb")
	compareCmd.Flags().StringVar(&standardLab, "standard-lab", "", "standard sample as L,a,b")
	compareCmd.Flags().StringVar(&testLab, "test-lab", "", "test sample as L,a,b")
	compareCmd.Flags().StringSlice("metric", []string{string(delta.CIE76), string(delta.CIEDE2000)}, "delta E metrics to score")
	compareCmd.Flags().String("template", "", "pongo2 template file for the report")
	compareCmd.Flags().BoolVar(&showSwatch, "swatch", false, "print color swatches before the report")

	viper.BindPFlag("metrics", compareCmd.Flags().Lookup("metric"))
	viper.BindPFlag("template", compareCmd.Flags().Lookup("template"))
}

func runCompare(cmd *cobra.Command, args []string) error {
	metrics, err := configuredMetrics()
	if err != nil {
		return err
	}

	labMode := standardLab != "" || testLab != ""
	rgbMode := standardSample != "" || testSample != ""
	switch {
	case labMode && rgbMode:
		return fmt.Errorf("give samples either as RGB or as Lab, not both")
	case labMode:
		return compareLab(cmd, metrics)
	case rgbMode:
		return compareRGB(cmd, metrics)
	default:
		return fmt.Errorf("a standard and a test sample are required")
	}
}

func compareLab(cmd *cobra.Command, metrics []delta.Metric) error {
	if standardLab == "" || testLab == "" {
		return fmt.Errorf("both --standard-lab and --test-lab are required")
	}
	std, err := parseLab(standardLab)
	if err != nil {
		return fmt.Errorf("standard: %w", err)
	}
	test, err := parseLab(testLab)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}

	scores, err := delta.Scores(std, test, metrics...)
	if err != nil {
		return err
	}
	for _, m := range metrics {
		fmt.Fprintf(cmd.OutOrStdout(), "Delta %s: %.4f\n", report.Label(m), scores[m])
	}
	return nil
}

func compareRGB(cmd *cobra.Command, metrics []delta.Metric) error {
	if standardSample == "" || testSample == "" {
		return fmt.Errorf("both --standard and --test are required")
	}

	cv, err := newConverter()
	if err != nil {
		return err
	}
	std, err := convertSample(cv, standardSample)
	if err != nil {
		return fmt.Errorf("standard: %w", err)
	}
	test, err := convertSample(cv, testSample)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}

	c, err := report.New(std, test, metrics...)
	if err != nil {
		return err
	}
	for _, m := range c.Metrics {
		logger.Debug("scored comparison", "metric", string(m), "score", c.Scores[m])
	}

	var o string
	if tpl := viper.GetString("template"); tpl != "" {
		logger.Debug("rendering report", "template", tpl)
		o, err = report.RenderFile(c, tpl)
	} else {
		o, err = report.Render(c, report.DefaultTemplate)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showSwatch {
		fmt.Fprintln(out, report.Swatch(std, "standard"))
		fmt.Fprintln(out, report.Swatch(test, "test"))
	}
	fmt.Fprint(out, o)
	return nil
}

func convertSample(cv *colorspace.Converter, s string) (colorspace.Conversion, error) {
	rgb, err := parseRGB(s)
	if err != nil {
		return colorspace.Conversion{}, err
	}
	return cv.Convert(rgb)
}
