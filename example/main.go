// Demonstrates configuration chaining, lifecycle hooks, and asset URL
// resolution.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/cascadekit/cascade"
)

func main() {
	site, err := cascade.NewBuilder("site").
		WithEnvPrefix("CASCADE_").
		WithFile("cascade.toml").
		Build()
	if err != nil && !errors.Is(err, cascade.ErrConfigNotFound) {
		log.Fatal("failed to load configuration:", err)
	}

	// A page-specific scope overrides the output style but inherits
	// everything else, including import paths accumulated on the parent.
	_ = site.Append("additional_import_paths", "shared/sass")
	page, err := site.Inherit("landing")
	if err != nil {
		log.Fatal(err)
	}
	_ = page.Set("output_style", "compressed")

	// React to compiler lifecycle events.
	page.Hooks().On(cascade.EventStylesheetSaved, func(payload ...any) {
		fmt.Println("saved:", payload[0])
	})

	// Register an asset root and resolve a logical path through it. The
	// resolver lives on the chain root; the page scope delegates to it.
	site.AddCollection(cascade.CollectionOptions{
		Name:     "theme",
		RootPath: "assets/theme",
		HTTPPath: "/assets",
	})
	url, found, err := page.URLResolver().Resolve("icons/close.png", cascade.AssetImage)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("url=%s found=%v\n", url, found)

	page.Hooks().Fire(cascade.EventStylesheetSaved, "css/landing.css")
}
