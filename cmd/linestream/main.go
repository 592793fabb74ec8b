// linestream - line reading tool
//
// linestream reads newline-delimited text from files and pipes using either
// a synchronous or a prefetching asynchronous line reader.
package main

import (
	"os"

	"github.com/ccollicutt/linestream/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
