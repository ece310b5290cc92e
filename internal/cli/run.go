// Package cli implements the ohp command-line interface over the profile
// package. Library-layer errors are translated into stderr messages and
// process exit codes here and nowhere else.
package cli

import (
	"errors"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/prevoccupai/ohp/internal/profile"
)

// defaultInspectDepth is the --depth default for --inspect.
const defaultInspectDepth = 3

// options holds the parsed command-line state.
type options struct {
	list    bool
	inspect string
	depth   int
	paths   string
	summary bool
	export  string
	explore string
	quiet   bool
	help    bool
	cwd     string
	config  string
	dir     string
}

// Sentinel errors for flag validation.
var (
	errTooManyArgs        = errors.New("at most one directory argument is allowed")
	errConflictingModes   = errors.New("choose one of --list, --inspect, --paths, --summary, --explore")
	errExportNeedsSummary = errors.New("--export requires --summary")
)

// Run is the main entry point. Returns the process exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	ioCtx := NewIO(out, errOut)

	fs, opts := newFlags()
	fs.SetOutput(&strings.Builder{}) // discard pflag output

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(ioCtx, fs)

			return 0
		}

		ioCtx.ErrPrintln("error:", err)

		return 1
	}

	if opts.help {
		printUsage(ioCtx, fs)

		return 0
	}

	rest := fs.Args()
	if len(rest) > 1 {
		ioCtx.ErrPrintln("error:", errTooManyArgs)

		return 1
	}

	if len(rest) == 1 {
		opts.dir = rest[0]
	}

	if err := validateModes(opts); err != nil {
		ioCtx.ErrPrintln("error:", err)

		return 1
	}

	cfg, err := profile.LoadConfig(profile.LoadConfigInput{
		WorkDirOverride:    opts.cwd,
		ConfigPath:         opts.config,
		ProfileDirOverride: opts.dir,
		Env:                env,
	})
	if err != nil {
		ioCtx.ErrPrintln("error:", err)

		return 1
	}

	store := profile.Load(cfg.ProfileDirAbs, profile.LoadOptions{
		Verbose: !opts.quiet,
		Diag:    errOut,
	})

	if store.Len() == 0 {
		ioCtx.ErrPrintln("No profiles loaded.")

		return 1
	}

	var cmdErr error

	switch {
	case opts.list:
		cmdErr = execList(ioCtx, store)
	case opts.inspect != "":
		cmdErr = execInspect(ioCtx, store, opts.inspect, opts.depth)
	case opts.paths != "":
		cmdErr = execPaths(ioCtx, store, opts.paths)
	case opts.summary:
		cmdErr = execSummary(ioCtx, store, opts.export)
	case opts.explore != "":
		cmdErr = execExplore(ioCtx, store, opts.explore, env)
	default:
		printInfo(ioCtx, cfg, store)
	}

	if cmdErr != nil {
		ioCtx.ErrPrintln("error:", cmdErr)

		return 1
	}

	return 0
}

func newFlags() (*flag.FlagSet, *options) {
	opts := &options{}

	fs := flag.NewFlagSet("ohp", flag.ContinueOnError)
	fs.BoolVarP(&opts.list, "list", "l", false, "List all subject IDs")
	fs.StringVarP(&opts.inspect, "inspect", "i", "", "Inspect the structure of SUBJECT_ID's profile")
	fs.IntVarP(&opts.depth, "depth", "d", defaultInspectDepth, "Max depth for --inspect")
	fs.StringVarP(&opts.paths, "paths", "p", "", "List available paths for SUBJECT_ID")
	fs.BoolVarP(&opts.summary, "summary", "s", false, "Show data availability summary for all subjects")
	fs.StringVar(&opts.export, "export", "", "With --summary, export the table as CSV to FILE")
	fs.StringVarP(&opts.explore, "explore", "e", "", "Interactively explore SUBJECT_ID's profile")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress loading messages")
	fs.StringVarP(&opts.cwd, "cwd", "C", "", "Run as if started in this directory")
	fs.StringVarP(&opts.config, "config", "c", "", "Explicit config file path")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help")

	return fs, opts
}

func validateModes(opts *options) error {
	modes := 0

	for _, active := range []bool{
		opts.list,
		opts.inspect != "",
		opts.paths != "",
		opts.summary,
		opts.explore != "",
	} {
		if active {
			modes++
		}
	}

	if modes > 1 {
		return errConflictingModes
	}

	if opts.export != "" && !opts.summary {
		return errExportNeedsSummary
	}

	return nil
}
