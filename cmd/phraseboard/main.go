// phraseboard logs messages composed on an assistive-communication board
// and ranks the phrases worth offering back as quick suggestions.
package main

import (
	"os"

	"github.com/corey/phraseboard/cmd/phraseboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
