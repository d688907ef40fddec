// ABOUTME: `sndctl current` shows the default device for one or all directions.

package main

import (
	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/format"
	"github.com/sndctl/sndctl/internal/logging"
)

func newCurrentCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the current default device",
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

			if dir != device.Any {
				current, err := ctx.selector().Current(dir)
				if err != nil {
					return err
				}
				return format.RenderOne(cmd.OutOrStdout(), current, f)
			}

			// With --type all, show every direction that has a default,
			// skipping the ones that fail to read.
			var defaults []device.Device
			for _, d := range expandDirections(dir) {
				current, err := ctx.selector().Current(d)
				if err != nil {
					logging.Debug("no default %s device: %v", d, err)
					continue
				}
				defaults = append(defaults, current)
			}
			return format.RenderList(cmd.OutOrStdout(), defaults, f)
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "output", "Device type: input, output, system, all")
	return cmd
}
