// Command landmarkctl inspects the accessibility landmarks of HTML pages
// and exercises keyboard navigation between them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "lint":
		return runLint(args[1:], stdout, stderr)
	case "walk":
		return runWalk(args[1:], stdout, stderr)
	case "tui":
		return runTUI(args[1:], stderr)
	case "listen":
		return runListen(args[1:], stdout, stderr)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "landmarkctl %s\n", version)
		return 0
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "landmarkctl - accessibility landmark tools\n\n")
	fmt.Fprintf(w, "Usage: landmarkctl <command> [options] [FILE.html]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  lint     Report landmark problems in a page\n")
	fmt.Fprintf(w, "  walk     Press the navigation key repeatedly and print where focus lands\n")
	fmt.Fprintf(w, "  tui      Navigate a page's landmarks interactively in the terminal\n")
	fmt.Fprintf(w, "  listen   Navigate a page's landmarks from a Linux input device\n")
	fmt.Fprintf(w, "  version  Show version information\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  landmarkctl lint index.html\n")
	fmt.Fprintf(w, "  landmarkctl walk -n 5 -backward index.html\n")
	fmt.Fprintf(w, "  landmarkctl walk -url https://example.com\n")
	fmt.Fprintf(w, "  landmarkctl listen -device /dev/input/event3 index.html\n")
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	configPath string
	locale     string
	logLevel   string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", os.Getenv(constants.ConfigEnvVar), "Path to TOML configuration file")
	fs.StringVar(&c.locale, "locale", "", "Language of diagnostic messages (overrides config)")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// load reads the configuration and applies it to the shared logger.
func (c *commonFlags) load() (landmark.Config, error) {
	cfg, err := landmark.LoadConfig(c.configPath)
	if err != nil {
		return landmark.Config{}, err
	}
	if c.locale != "" {
		cfg.Locale = c.locale
	}
	if c.logLevel != "" {
		switch c.logLevel {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = c.logLevel
		default:
			return landmark.Config{}, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.logLevel)
		}
	}
	cfg.Apply()
	return cfg, nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// openFile parses an HTML file with the configured hidden attributes.
func openFile(path string, cfg landmark.Config) (*htmldoc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return htmldoc.Parse(f, htmldoc.WithHidden(htmldoc.HiddenBy(cfg.HiddenAttributes...)))
}

// singleFile returns the one positional argument of fs.
func singleFile(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one HTML file, got %d arguments", fs.NArg())
	}
	return fs.Arg(0), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
