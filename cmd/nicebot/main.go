// Command nicebot checks a path or URL against a robots.txt file.
package main

import (
	"github.com/alexanderjkslfj/nicebot/internal/cli"
)

func main() {
	cmd.Execute()
}
