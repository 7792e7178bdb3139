// Command periphfake lists serial ports, captures firmware traffic into
// trace files and prints them. Traces replay into doubles with
// fixture.Replay.
package main

import "periphfake/host/cmd/periphfake/cmd"

func main() {
	cmd.Execute()
}
