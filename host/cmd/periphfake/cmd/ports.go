package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"periphfake/host/serial"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports on this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := serial.List()
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No serial ports found")
			return nil
		}

		for _, p := range ports {
			if p.IsUSB {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s usb %s:%s %s\n", p.Name, p.VID, p.PID, p.SerialNumber)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
