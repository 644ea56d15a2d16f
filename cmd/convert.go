/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/colorpi/colorspace"
	"github.com/mmuldo/colorpi/report"
)

var (
	convertHex  string
	convertJSON bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [R G B]",
	Short: "Shows HEX, CMYK, CIELAB and LCh for an RGB sample",
	Long: `Shows HEX, CMYK, CIELAB and LCh for an RGB sample given either as three
channel values or with --hex. Lab and LCh are rounded to one decimal.`,
	Example: `  colorpi convert 0 120 201
  colorpi convert --hex '#0078c9' --json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if convertHex != "" {
			if len(args) != 0 {
				return fmt.Errorf("give either --hex or three channel values, not both")
			}
			return nil
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertHex, "hex", "", "sample as a #rrggbb hex code")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "print JSON instead of text")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var rgb colorspace.RGB
	var err error
	if convertHex != "" {
		rgb, err = colorspace.ParseHex(convertHex)
	} else {
		rgb, err = rgbFromFields(args)
	}
	if err != nil {
		return err
	}

	cv, err := newConverter()
	if err != nil {
		return err
	}
	conv, err := cv.Convert(rgb)
	if err != nil {
		return err
	}
	logger.Debug("converted sample", "rgb", rgb.String(), "lab", fmt.Sprintf("%+v", conv.Lab))

	d := conv.Display()
	out := cmd.OutOrStdout()

	if convertJSON {
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	fmt.Fprintln(out, report.Swatch(d, "sample"))
	fmt.Fprintf(out, "HEX:    %s\n", d.Hex)
	fmt.Fprintf(out, "RGB:    %s\n", d.RGB)
	fmt.Fprintf(out, "CMYK:   %s\n", d.CMYK)
	fmt.Fprintf(out, "CIELAB: %s\n", d.Lab)
	fmt.Fprintf(out, "LCH:    %s\n", d.LCh)
	return nil
}
