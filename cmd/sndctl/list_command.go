// ABOUTME: `sndctl list` prints the filtered, deterministically sorted device listing.

package main

import (
	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/format"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audio devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := device.ParseDirection(typeFlag)
			if err != nil {
				return err
			}
			f, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			devices := ctx.selector().List(dir)
			return format.RenderList(cmd.OutOrStdout(), devices, f)
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "all", "Device type: input, output, system, all")
	return cmd
}
