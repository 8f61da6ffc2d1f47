package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/CrestNiraj12/speakfeed/infra/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliHelp cliMode = iota
	cliVersion
	cliRender
	cliCheck
	cliFields
	cliPreview
)

var commands = map[string]cliMode{
	"render":  cliRender,
	"check":   cliCheck,
	"fields":  cliFields,
	"preview": cliPreview,
	"help":    cliHelp,
}

// cliOptions is the parsed command line. Empty strings mean "not given";
// environment configuration fills them in later.
type cliOptions struct {
	mode      cliMode
	input     string // Payload file, "-" or "" for stdin
	kind      string
	source    string
	slot      string
	template  string
	templates string
	logLevel  string

	templateSet bool // --template given, even if empty
}

// exitError carries a process exit code without an error message.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitError) ExitCode() int { return e.code }

func newFlagSet(opts *cliOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("speakfeed", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.kind, "kind", "post", "record kind: post, dm, user or notification")
	fs.StringVar(&opts.source, "source", "", "payload source: mastodon or bluesky (default $SPEAKFEED_SOURCE or mastodon)")
	fs.StringVar(&opts.slot, "slot", "", "render with this configured template slot instead of the default for --kind")
	fs.StringVar(&opts.template, "template", "", "render or check this template text instead of the configured ones")
	fs.StringVar(&opts.templates, "templates", "", "templates YAML file (default $SPEAKFEED_TEMPLATES or ~/.config/speakfeed/templates.yaml)")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default $SPEAKFEED_LOG_LEVEL or warn)")
	fs.BoolP("version", "v", false, "print version and exit")
	fs.BoolP("help", "h", false, "show help")
	return fs
}

func parseCLIArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cliOptions{mode: cliHelp}, nil
		}
		return opts, err
	}
	if v, _ := fs.GetBool("version"); v {
		return cliOptions{mode: cliVersion}, nil
	}
	if h, _ := fs.GetBool("help"); h {
		return cliOptions{mode: cliHelp}, nil
	}
	opts.templateSet = fs.Changed("template")

	rest := fs.Args()
	if len(rest) == 0 {
		return cliOptions{mode: cliHelp}, nil
	}
	mode, ok := commands[rest[0]]
	if !ok {
		return opts, fmt.Errorf("unknown command: %s", rest[0])
	}
	opts.mode = mode
	rest = rest[1:]

	switch mode {
	case cliRender, cliPreview:
		if len(rest) > 1 {
			return opts, fmt.Errorf("unexpected argument: %s", strings.Join(rest[1:], " "))
		}
		if len(rest) == 1 {
			opts.input = rest[0]
		}
	default:
		if len(rest) > 0 {
			return opts, fmt.Errorf("unexpected argument: %s", strings.Join(rest, " "))
		}
	}
	if opts.slot != "" && opts.templateSet {
		return opts, errors.New("--slot and --template are mutually exclusive")
	}
	return opts, nil
}

func usage() string {
	var opts cliOptions
	fs := newFlagSet(&opts)
	return `speakfeed renders Mastodon and Bluesky records through $field$ templates.

Usage:
  speakfeed [flags] render [file|-]   print one rendered line per record
  speakfeed [flags] check             lint the configured templates (or --template)
  speakfeed [flags] fields            list the field paths --kind accepts
  speakfeed [flags] preview [file]    edit templates live against the records

Examples:
  speakfeed render home.json
  speakfeed --source bluesky --kind notification render notifications.json
  speakfeed --kind user --template '$name$ (@$screen_name$)' render accounts.json
  speakfeed --kind dm fields

Flags:
` + fs.FlagUsages()
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// loadConfig reads the environment (and .env) and applies flag overrides.
func loadConfig(opts cliOptions) (config.Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if opts.templates != "" {
		cfg.TemplatesPath = opts.templates
	}
	if opts.source != "" {
		src, err := config.ParseSource(opts.source)
		if err != nil {
			return cfg, err
		}
		cfg.Source = src
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseCLIArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n%s", err, usage())
		return exitError{code: 2}
	}

	switch opts.mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Fprintf(stdout, "speakfeed %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return nil
	case cliHelp:
		fmt.Fprint(stdout, usage())
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch opts.mode {
	case cliFields:
		return runFields(opts, stdout)
	case cliCheck:
		return runCheck(opts, cfg, stdout, stderr)
	case cliRender:
		return runRender(opts, cfg, stdin, stdout, stderr)
	case cliPreview:
		return runPreview(opts, cfg, stdin, stdout, stderr)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "speakfeed: %v\n", err)
		os.Exit(1)
	}
}
