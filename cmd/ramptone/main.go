// Ramptone - a design-token colour ramp generator
//
// Ramptone turns base colours into multi-stop colour ramps and exports
// them as design tokens.
package main

import (
	"github.com/ramptone/ramptone/internal/cli"
)

func main() {
	cli.Execute()
}
