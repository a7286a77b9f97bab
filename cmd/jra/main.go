// Command jra browses the JRA horse roster from the terminal.
//
// Usage:
//
//	jra search --jockey 武豊
//	jra rank earnings --top 10
//	jra grid --years 1990-1999
//	curl -s https://example.com/real_horse_data.json | jra stats --stdin
package main

import (
	"os"

	"github.com/padraicbc/jrabrowser/config"
)

func main() {
	if err := newRootCmd(config.Read()).Execute(); err != nil {
		os.Exit(1)
	}
}
