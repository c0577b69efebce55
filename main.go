// Command memblock reserves OS memory to simulate a machine with less RAM.
package main

import (
	"github.com/sarchlab/memblock/cmd"
	"github.com/tebeka/atexit"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
