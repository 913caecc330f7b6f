package commands

import (
	"github.com/snobb/imk/internal/core/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagCommand     = "command"
	flagWrapShell   = "wrap-shell"
	flagKillTimeout = "kill-timeout"
	flagTeardown    = "teardown"
	flagOnce        = "once"
	flagRecurse     = "recurse"
	flagThreshold   = "threshold"
	flagImmediate   = "immediate"
	flagPTY         = "pty"
	flagBackend     = "backend"
	flagIgnore      = "ignore"
	flagLogFormat   = "log-format"
	flagTimings     = "timings"
	flagFile        = "file"
)

func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.SortFlags = false

	f.StringP(flagCommand, "c", "", "Command to execute")
	f.BoolP(flagWrapShell, "s", false, "Run the command through /bin/sh -c")
	f.Uint64P(flagKillTimeout, "k", 0, "Kill the command after `MS` milliseconds")
	f.StringP(flagTeardown, "d", "", "Shell command run on timeout instead of SIGTERM (needs -k, gets $"+domain.TeardownPIDEnv+")")
	f.BoolP(flagOnce, "o", false, "Exit with the command's exit code after the first run")
	f.BoolP(flagRecurse, "r", false, "Watch all sub-directories of directory arguments")
	f.Uint64P(flagThreshold, "t", 0, "Ignore events for `SECONDS` after a run")
	f.BoolP(flagImmediate, "i", false, "Run the command once before watching")
	f.BoolP(flagPTY, "p", false, "Attach the command to a pseudo-terminal")
	f.StringP(flagBackend, "b", domain.BackendAuto, "Watch backend: auto, inotify or fsnotify")
	f.StringArrayP(flagIgnore, "I", nil, "Additional directory `SUFFIX` skipped by -r (repeatable)")
	f.String(flagLogFormat, domain.LogFormatAuto, "Log format: auto, pretty, plain or json")
	f.BoolP(flagTimings, "T", false, "Log the duration of every run")
	f.StringP(flagFile, "f", "", "Read defaults from a YAML profile `FILE`")
}

// applyFlags overlays every flag set on the command line onto cfg.
// Flags left at their defaults keep the profile's values.
func applyFlags(f *pflag.FlagSet, cfg *domain.Config) error {
	var err error
	f.Visit(func(fl *pflag.Flag) {
		if err != nil {
			return
		}
		err = applyFlag(f, fl.Name, cfg)
	})
	return err
}

//nolint:cyclop // one case per flag
func applyFlag(f *pflag.FlagSet, name string, cfg *domain.Config) error {
	var err error
	switch name {
	case flagCommand:
		cfg.Command.Invocation, err = f.GetString(name)
	case flagWrapShell:
		cfg.Command.ShellWrap, err = f.GetBool(name)
	case flagKillTimeout:
		var ms uint64
		if ms, err = f.GetUint64(name); err == nil {
			cfg.Command.Timeout, err = domain.KillTimeoutFromMillis(ms)
		}
	case flagTeardown:
		cfg.Command.Teardown, err = f.GetString(name)
	case flagOnce:
		cfg.Command.RunOnce, err = f.GetBool(name)
	case flagRecurse:
		cfg.Recurse, err = f.GetBool(name)
	case flagThreshold:
		var s uint64
		if s, err = f.GetUint64(name); err == nil {
			cfg.Threshold, err = domain.ThresholdFromSeconds(s)
		}
	case flagImmediate:
		cfg.Immediate, err = f.GetBool(name)
	case flagPTY:
		cfg.Command.PTY, err = f.GetBool(name)
	case flagBackend:
		cfg.Backend, err = f.GetString(name)
	case flagIgnore:
		var extra []string
		extra, err = f.GetStringArray(name)
		cfg.Ignore = append(cfg.Ignore, extra...)
	case flagLogFormat:
		cfg.LogFormat, err = f.GetString(name)
	case flagTimings:
		cfg.Timings, err = f.GetBool(name)
	}
	return err
}
