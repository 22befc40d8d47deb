// Command squaremat is the demo/driver for the matrix package.
package main

import "github.com/katalvlaran/squaremat/internal/cli"

func main() {
	cli.Execute()
}
