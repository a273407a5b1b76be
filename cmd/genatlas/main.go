// Command genatlas regenerates the placeholder tile sheet under data/.
// Run it after changing the sheet layout or the palette.
package main

import (
	"flag"
	"fmt"
	"os"

	"greenfathom.com/mirehollow/placeholders"
)

func main() {
	dataDir := flag.String("data", "data", "data directory to write the sheet into")
	flag.Parse()

	if err := placeholders.GenerateAndSave(*dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "genatlas: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s/tiles/hollow.png\n", *dataDir)
}
