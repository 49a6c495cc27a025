package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/charseq/core/config"
	mdwerror "github.com/msto63/charseq/core/error"
	mdwerrors "github.com/msto63/charseq/core/errors"
	"github.com/msto63/charseq/core/log"
	"github.com/msto63/charseq/utils/seqx"
)

const appName = "charseq"

// app holds the flag values and the state prepared before each command runs.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	mode      string
	culture   string
	verbose   bool
	null      bool

	cfg        *config.Config
	settings   config.Settings
	comparison seqx.Comparison
	logger     *log.Logger
}

// NewRootCmd builds the charseq command tree.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRoot()
	return rootCmd
}

func newRoot() (*cobra.Command, *app) {
	a := &app{logger: log.GetDefault()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Sequence queries over the characters of a string",
		Long: `charseq answers sequence questions about a string directly:
take and skip prefixes, the first, last or n-th character, counts,
membership and equality under a comparison mode.

Characters are the bytes of the argument. Results that are characters
print as quoted byte literals such as 'a' or '\x00'. Negative counts
and indexes are read as arguments, not flags: charseq take hello -1.

Every query accepts --null to run against an absent source instead of
its string argument; the query then fails with INVALID_ARGUMENT.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./charseq.toml or ~/.config/charseq/charseq.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, console, json, logfmt")
	flags.StringVar(&a.mode, "mode", "", "comparison mode for equal: "+comparisonModes())
	flags.StringVar(&a.culture, "culture", "", "BCP 47 language for the current-culture modes, e.g. de-DE")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
	flags.BoolVar(&a.null, "null", false, "query an absent source; the string argument is omitted")

	rootCmd.AddCommand(
		newTakeCmd(a),
		newSkipCmd(a),
		newEqualCmd(a),
		newCharsCmd(a),
		newDefaultIfEmptyCmd(a),
		newFirstCmd(a),
		newLastCmd(a),
		newElementAtCmd(a),
		newAnyCmd(a),
		newCountCmd(a),
		newContainsCmd(a),
		newInspectCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, cmd.Name(), err.Error(), "valid flags (see --help)")
	})

	return rootCmd, a
}

// Execute runs the command line with os.Args.
func Execute() error {
	rootCmd, a := newRoot()
	return a.run(rootCmd, os.Args[1:], os.Stdout, os.Stderr)
}

// run executes rootCmd with args. Failures are logged and printed to stderr.
func (a *app) run(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(numericArgs(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	a.logger = log.New().WithOutput(stderr).WithName(appName)

	err := rootCmd.Execute()
	if err != nil {
		a.logger.LogError(err)
		printError(stderr, err)
	}
	return err
}

// numericArgs lets negative integers through as positional arguments.
// pflag reads a token such as -1 as a shorthand flag, so when a positional
// argument is a negative integer the line is rewritten to the command
// path, the flags with their values, "--" and the positional arguments in
// their original order. A line that already contains "--" is left alone.
func numericArgs(rootCmd *cobra.Command, args []string) []string {
	if !slices.ContainsFunc(args, isNegativeInt) || slices.Contains(args, "--") {
		return args
	}
	cmd, rest, err := rootCmd.Find(args)
	if err != nil || cmd == rootCmd || cmd.DisableFlagParsing {
		return args
	}

	flags, inherited := cmd.Flags(), cmd.InheritedFlags()
	takesValue := func(token string) bool {
		if strings.Contains(token, "=") {
			return false
		}
		name := strings.TrimLeft(token, "-")
		lookup, fallback := flags.Lookup, inherited.Lookup
		if !strings.HasPrefix(token, "--") {
			if len(name) != 1 {
				return false
			}
			lookup, fallback = flags.ShorthandLookup, inherited.ShorthandLookup
		}
		f := lookup(name)
		if f == nil {
			f = fallback(name)
		}
		return f != nil && f.NoOptDefVal == ""
	}

	var flagArgs, positional []string
	for i := 0; i < len(rest); i++ {
		token := rest[i]
		if len(token) < 2 || token[0] != '-' || isNegativeInt(token) {
			positional = append(positional, token)
			continue
		}
		flagArgs = append(flagArgs, token)
		if takesValue(token) && i+1 < len(rest) {
			i++
			flagArgs = append(flagArgs, rest[i])
		}
	}
	if !slices.ContainsFunc(positional, isNegativeInt) {
		return args
	}

	var path []string
	for c := cmd; c.HasParent(); c = c.Parent() {
		path = append([]string{c.Name()}, path...)
	}
	out := append(path, flagArgs...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeInt(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// prepare loads the configuration, applies flag overrides and builds the
// logger for one invocation.
func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.settings = cfg.Settings()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.settings.Log.Level = a.logLevel
	}
	if a.verbose {
		a.settings.Log.Level = log.LevelDebug.String()
	}
	if flags.Changed("log-format") {
		a.settings.Log.Format = a.logFormat
	}
	if flags.Changed("mode") {
		a.settings.Compare.Mode = a.mode
	}
	if flags.Changed("culture") {
		a.settings.Compare.Culture = a.culture
	}

	level, err := log.ParseLevel(a.settings.Log.Level)
	if err != nil {
		return invalidSetting(config.KeyLogLevel, a.settings.Log.Level, err)
	}
	format, err := log.ParseFormat(a.settings.Log.Format)
	if err != nil {
		return invalidSetting(config.KeyLogFormat, a.settings.Log.Format, err)
	}
	a.comparison, err = seqx.ParseComparison(a.settings.Compare.Mode)
	if err != nil {
		return invalidSetting(config.KeyCompareMode, a.settings.Compare.Mode, err)
	}
	if err := seqx.SetCultureName(a.settings.Compare.Culture); err != nil {
		return invalidSetting(config.KeyCompareCulture, a.settings.Compare.Culture, err)
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   appName,
	}).WithRequestID(uuid.NewString()).WithField("command", cmd.Name())

	a.logger.Debug("configuration loaded", log.Fields{
		"config_file": cfg.FilePath(),
		"mode":        a.comparison.String(),
		"culture":     seqx.Culture().String(),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: appName,
			Defaults:  config.Defaults(),
		})
	}
	options := config.DefaultDiscoveryOptions(appName)
	options.Defaults = config.Defaults()
	return config.Discover(options)
}

func invalidSetting(key, value string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation("prepare").
		Messagef("invalid setting %s = %q (environment %s)", key, value, config.EnvKey(appName, key)).
		Cause(cause).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}

func comparisonModes() string {
	names := make([]string, 0, 6)
	for c := seqx.Ordinal; c.IsValid(); c++ {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
