package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saylorsolutions/byteseal/cmd/internal"
	"github.com/saylorsolutions/byteseal/pkg/passlock"
)

func runUnlock(ctx context.Context, args []string) error {
	var (
		outputFlag string
		forceFlag  bool
	)
	flags, helpFlag := newFlagSet("unlock", "FILE", "Decrypts a container and restores the original file with its recorded name.")
	flags.StringVarP(&outputFlag, "output", "o", ".", "Directory to restore the file into.")
	flags.BoolVarP(&forceFlag, "force", "f", false, "Replace the restored file if it exists.")
	flags.Duration("timeout", 0, "Give up waiting after this long, for example 30s.")
	if err := parse(flags, helpFlag, args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one FILE argument, got %d", flags.NArg())
	}

	input := flags.Arg(0)
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	// Header problems are reported before asking for a password.
	_, desc, err := passlock.Inspect(data)
	if err != nil {
		return err
	}
	log.Infof("Detected %s", desc)

	password, err := internal.GetPassword(false)
	if err != nil {
		return err
	}
	defer clear(password)

	log.Infof("Deriving key and decrypting")
	ctx, cancel := withTimeout(ctx, flags)
	defer cancel()
	unlocked, err := passlock.UnlockContext(ctx, data, password)
	if err != nil {
		return err
	}

	name := restoreName(unlocked.Meta.Name, input)
	if name != unlocked.Meta.Name {
		log.Warnf("Recorded file name '%s' was changed to '%s'", unlocked.Meta.Name, name)
	}
	output := filepath.Join(outputFlag, name)
	log.Debugf("Restoring %d bytes of type '%s'", len(unlocked.Data), unlocked.Meta.Type)
	if err := internal.WriteFileAtomic(output, unlocked.Data, 0600, forceFlag); err != nil {
		return err
	}
	internal.Echo("Restored '%s' (%s)", output, desc.Label)
	return nil
}

// restoreName reduces the recorded name to a single path element, so a container can't write outside the output directory.
// If nothing usable is left, the container's own name without its extension is used.
func restoreName(recorded, container string) string {
	name := strings.ReplaceAll(recorded, `\`, "/")
	name = filepath.Base(filepath.FromSlash(name))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		base := strings.TrimSuffix(filepath.Base(container), containerExt)
		if base == "" || base == filepath.Base(container) {
			return base + ".restored"
		}
		return base
	}
	return name
}
