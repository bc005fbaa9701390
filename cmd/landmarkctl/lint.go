package main

import (
	"fmt"
	"io"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

func runLint(args []string, stdout, stderr io.Writer) int {
	var common commonFlags
	fs := newFlagSet("lint", stderr)
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path, err := singleFile(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	cfg, err := common.load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer landmark.Close()

	doc, err := openFile(path, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if errs := lint(doc, cfg, stdout); errs > 0 {
		return 1
	}
	return 0
}

// lint registers every landmark of doc, prints them with the diagnostics
// they raise and returns the number of error-level diagnostics.
func lint(doc *htmldoc.Document, cfg landmark.Config, w io.Writer) int {
	opts := append(cfg.Options(), landmark.WithLogger(landmark.GetLogger()))
	reg := landmark.New(doc, opts...)
	doc.Bind(reg)

	for i, l := range reg.Landmarks() {
		fmt.Fprintf(w, "%2d. %-14s %s\n", i+1, l.Role, htmldoc.Describe(l.Element))
	}

	var errs, warnings int
	for _, d := range reg.Diagnostics() {
		if d.Severity == landmark.SeverityError {
			errs++
		} else {
			warnings++
		}
		fmt.Fprintf(w, "\n%s\n", d)
		for _, el := range d.Elements {
			fmt.Fprintf(w, "    %s\n", htmldoc.Describe(el))
		}
	}

	fmt.Fprintf(w, "\n%d landmarks, %d errors, %d warnings\n", reg.Len(), errs, warnings)
	return errs
}
