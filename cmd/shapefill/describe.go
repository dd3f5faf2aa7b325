package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/shapefill/pkg/decoration"
)

func newDescribeCmd(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the diagnostics properties of a decoration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDecoration(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, decorationName(d))
			fmt.Fprint(out, decoration.DescribeProperties(d.Properties(), "  "))
			fmt.Fprintf(out, "padding: %v\n", d.Padding())
			fmt.Fprintf(out, "complex: %t\n", d.IsComplex())
			a.log.Debug().Str("config", configPath).Uint64("hash", d.Hash()).Msg("described decoration")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Decoration YAML file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func decorationName(d decoration.Decoration) string {
	switch d.(type) {
	case *decoration.ShapeDecoration:
		return "ShapeDecoration"
	case *decoration.BoxDecoration:
		return "BoxDecoration"
	default:
		return fmt.Sprintf("%T", d)
	}
}
