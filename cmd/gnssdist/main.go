// Command gnssdist plots CN0 and pseudorange residual distributions over
// satellite elevation bins, one PNG per GNSS constellation.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
