/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorpi/report"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Checks a printed comparison report against its own values",
	Long: `Reads a comparison report as text (a file, or stdin when no file or "-" is
given), for example OCR output of a printout, and recomputes both Delta E
scores from the printed CIELAB values. Scores further than --tolerance from
the printed ones are listed, as are HEX and CMYK values that do not match
their RGB and LCH values that do not match their CIELAB. The command fails
when anything is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Float64("tolerance", 0.2, "allowed difference between printed and computed scores")
	viper.BindPFlag("tolerance", verifyCmd.Flags().Lookup("tolerance"))
}

func runVerify(cmd *cobra.Command, args []string) error {
	var text []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		text, err = io.ReadAll(cmd.InOrStdin())
	} else {
		text, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	reading, err := report.Parse(string(text))
	if err != nil {
		return err
	}

	tolerance := viper.GetFloat64("tolerance")
	logger.Debug("verifying report", "tolerance", tolerance)

	out := cmd.OutOrStdout()
	ds := report.Verify(reading, tolerance)
	for _, d := range ds {
		fmt.Fprintln(out, d)
	}
	if len(ds) > 0 {
		return fmt.Errorf("report has %d discrepancies", len(ds))
	}
	fmt.Fprintln(out, "report is consistent")
	return nil
}
