package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"periphfake/host/serial"
	"periphfake/trace"
)

var captureFlags struct {
	device   string
	baud     int
	frame    string
	out      string
	duration time.Duration
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record bytes received from a serial port into a trace file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if captureFlags.duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, captureFlags.duration)
			defer cancel()
		}

		frame, err := serial.ParseFrame(captureFlags.frame)
		if err != nil {
			return err
		}

		cfg := serial.DefaultConfig(captureFlags.device)
		cfg.Baud = captureFlags.baud
		cfg.Frame = frame

		port, err := serial.Open(cfg)
		if err != nil {
			return err
		}
		defer port.Close()

		f, err := os.Create(captureFlags.out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", captureFlags.out, err)
		}
		// Closed on every exit path, including atexit.Fatal from elsewhere.
		atexit.Register(func() { f.Close() })

		session := trace.NewSession()
		w, err := trace.NewWriter(f, session)
		if err != nil {
			return err
		}

		log.Printf("capturing %s at %d %s into %s (session %s)", port.Device(), cfg.Baud, port.Frame(), captureFlags.out, session)

		total, err := capture(ctx, port, w)
		fmt.Fprintf(cmd.OutOrStdout(), "Captured %d bytes from %s\n", total, port.Device())
		return err
	},
}

// capture copies port input into w until ctx is done
func capture(ctx context.Context, port io.Reader, w *trace.Writer) (int, error) {
	buf := make([]byte, 256)
	total := 0

	for ctx.Err() == nil {
		n, err := port.Read(buf)
		if n > 0 {
			if werr := w.Write(trace.Record{Dir: trace.RX, Data: buf[:n]}); werr != nil {
				return total, werr
			}
			total += n
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return total, fmt.Errorf("read failed: %w", err)
		}
	}
	return total, nil
}

func init() {
	captureCmd.Flags().StringVar(&captureFlags.device, "device", defaultDevice, "Serial device path (env "+envDevice+")")
	captureCmd.Flags().IntVar(&captureFlags.baud, "baud", serial.DefaultBaud, "Baud rate (env "+envBaud+")")
	captureCmd.Flags().StringVar(&captureFlags.frame, "frame", "8N1", "Data bits, parity and stop bits")
	captureCmd.Flags().StringVarP(&captureFlags.out, "out", "o", "capture.trace", "Trace file to write")
	captureCmd.Flags().DurationVar(&captureFlags.duration, "duration", 0, "Stop after this long (0 = until interrupted)")
	rootCmd.AddCommand(captureCmd)
}
