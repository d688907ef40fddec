// ABOUTME: `sndctl next` cycles the default device through the sorted listing.

package main

import (
	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/format"
)

func newNextCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Switch to the next device in listing order",
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

			sel := ctx.selector()
			dev, err := sel.Next(dir)
			if err != nil {
				return err
			}
			if err := sel.SetDefault(dev, []device.Direction{dir}); err != nil {
				return err
			}
			return format.RenderOne(cmd.OutOrStdout(), dev, f)
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "output", "Device type: input, output, system")
	return cmd
}
