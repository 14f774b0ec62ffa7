package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saylorsolutions/byteseal/cmd/internal"
	"github.com/saylorsolutions/byteseal/pkg/passlock"
	flag "github.com/spf13/pflag"
)

var version = "dev"

const containerExt = ".byts"

var log internal.Logger

const usage = `
byteseal locks any file into a password protected container, and unlocks it again.
Containers record the original file name and MIME type, so unlocking restores the file as it was.

USAGE:  byteseal COMMAND [FLAGS] [ARGS]

COMMANDS:
    lock FILE       Encrypt FILE into FILE.byts.
    unlock FILE     Decrypt a container and restore the original file.
    info FILE       Show the header of a container without decrypting it.
    formats         List the container formats this build understands.
    genpass         Print a strong random password.
    version         Print the version of byteseal.

Run 'byteseal COMMAND --help' for the flags of a command.

PASSWORD:
    Set the ` + internal.PasswordEnv + ` environment variable, or enter it interactively.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}
	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		code := internal.ExitFailure
		if errors.Is(err, passlock.ErrDecryptionFailed) {
			code = internal.ExitAuth
		}
		internal.FatalCode(code, "Error: %s", describe(err))
	}
}

func run(ctx context.Context, command string, args []string) error {
	switch command {
	case "lock", "encrypt":
		return runLock(ctx, args)
	case "unlock", "decrypt":
		return runUnlock(ctx, args)
	case "info":
		return runInfo(args)
	case "formats":
		return runFormats(args)
	case "genpass":
		return runGenpass(args)
	case "version", "--version", "-v":
		fmt.Printf("byteseal version %s\n", version)
		return nil
	case "help", "--help", "-h":
		fmt.Print(usage)
		return nil
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// newFlagSet creates a FlagSet with the help and logging flags every command shares.
func newFlagSet(name, argUsage, description string) (*flag.FlagSet, *bool) {
	var helpFlag bool
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&log.Verbose, "verbose", "v", false, "Prints progress information.")
	flags.BoolVar(&log.Debug, "debug", false, "Prints debug information, including container parameters.")
	flags.Usage = func() {
		fmt.Printf("\n%s\n\nUSAGE:  byteseal %s %s\n\nFLAGS:\n%s\n", description, name, argUsage, flags.FlagUsages())
	}
	return flags, &helpFlag
}

// parse parses args, and returns flag.ErrHelp after printing usage if help was requested.
func parse(flags *flag.FlagSet, helpFlag *bool, args []string) error {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if *helpFlag {
		flags.Usage()
		return flag.ErrHelp
	}
	return nil
}

// withTimeout bounds ctx when a positive timeout was requested.
func withTimeout(ctx context.Context, flags *flag.FlagSet) (context.Context, context.CancelFunc) {
	timeout, err := flags.GetDuration("timeout")
	if err != nil || timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
