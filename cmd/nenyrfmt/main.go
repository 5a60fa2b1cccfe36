// Command nenyrfmt parses Nenyr source files and reports their diagnostics.
//
// Flags:
//
//	-json               emit diagnostics as a JSON array instead of the human-readable rendering.
//	-source             include a source-context window and caret under each diagnostic.
//	-watch              keep running, re-parsing a file each time it changes on disk.
//	-min-nenyr-version  refuse to run unless this binary's schema version satisfies the given constraint.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/nenyr-lang/nenyr"
	"github.com/nenyr-lang/nenyr/internal/diagnostics"
	"github.com/nenyr-lang/nenyr/internal/schema"
)

func main() {
	var (
		asJSON        bool
		withSource    bool
		watch         bool
		minNenyrRange string
	)

	flag.BoolVar(&asJSON, "json", false, "emit diagnostics as a JSON array")
	flag.BoolVar(&withSource, "source", false, "include a source-context window under each diagnostic")
	flag.BoolVar(&watch, "watch", false, "keep running, re-parsing on file changes")
	flag.StringVar(&minNenyrRange, "min-nenyr-version", "", "refuse to run unless this parser's schema version satisfies the given constraint (e.g. \">=1.4.0\")")
	flag.Parse()

	log.SetFlags(0)

	if minNenyrRange != "" {
		ok, err := schema.CompatibleWith(minNenyrRange)
		if err != nil {
			log.Fatal(err)
		}

		if !ok {
			fmt.Fprintf(os.Stderr, "nenyrfmt: parser schema version %s does not satisfy %q\n", schema.Version, minNenyrRange)
			os.Exit(2)
		}
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: nenyrfmt [flags] <file.nyr>")
		os.Exit(2)
	}

	path := args[0]

	if !watch {
		os.Exit(runOnce(path, asJSON, withSource))
	}

	if err := watchAndParse(path, asJSON, withSource); err != nil {
		log.Fatal(err)
	}
}

func runOnce(path string, asJSON, withSource bool) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	_, diags := nenyr.Parse(string(data), path)

	printDiagnostics(diags, asJSON, withSource)

	if diagnostics.HasErrors(diags) {
		return 1
	}

	return 0
}

func printDiagnostics(diags []diagnostics.Diagnostic, asJSON, withSource bool) {
	if asJSON {
		out := make([]diagnostics.MachineReadable, len(diags))
		for i, d := range diags {
			out[i] = d.ToMachineReadable()
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(out); err != nil {
			log.Fatal(err)
		}

		return
	}

	for _, d := range diags {
		if withSource {
			fmt.Print(d.RenderWithSource())
		} else {
			fmt.Print(d.Render())
		}
	}
}

// watchAndParse re-parses path on every write, grounded in the same
// goroutine-plus-channel shape a filesystem watcher normally takes: one
// loop translating raw fsnotify events into re-parse triggers.
func watchAndParse(path string, asJSON, withSource bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	runOnce(path, asJSON, withSource)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			log.Printf("nenyrfmt: %s changed, re-parsing", path)
			runOnce(path, asJSON, withSource)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Printf("nenyrfmt: watch error: %v", err)
		}
	}
}
