// Command breakdemo renders a chart with axis breaks to PNG.
package main

import (
	"os"

	"github.com/gogpu/ggchart/cmd/breakdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
