// ABOUTME: `sndctl mute` controls mute state on the resolved or default device.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sndctl/sndctl/internal/apperrors"
	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/selector"
)

func newMuteCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "mute <on|off|toggle> [identifier]",
		Short: "Mute, unmute, or toggle a device",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := selector.ParseMuteAction(args[0])
			if err != nil {
				return err
			}
			dir, err := device.ParseDirection(typeFlag)
			if err != nil {
				return err
			}

			sel := ctx.selector()
			var dev device.Device
			if len(args) == 2 {
				dev, err = sel.Resolve(args[1], dir)
			} else {
				if dir == device.Any {
					return apperrors.NewOperationNotSupported("muting all directions at once is not supported")
				}
				dev, err = sel.Current(dir)
			}
			if err != nil {
				return err
			}

			muted, err := sel.ApplyMute(dev, action)
			if err != nil {
				return err
			}

			state := "unmuted"
			if muted {
				state = "muted"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", dev.Name, state)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "output", "Device type: input, output, system")
	return cmd
}
