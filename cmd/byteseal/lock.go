package main

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/saylorsolutions/byteseal/cmd/internal"
	"github.com/saylorsolutions/byteseal/pkg/format"
	"github.com/saylorsolutions/byteseal/pkg/passgen"
	"github.com/saylorsolutions/byteseal/pkg/passlock"
	"github.com/saylorsolutions/byteseal/pkg/strength"
)

func runLock(ctx context.Context, args []string) error {
	var (
		outputFlag    string
		typeFlag      string
		generateFlag  bool
		forceWeakFlag bool
		forceFlag     bool
	)
	flags, helpFlag := newFlagSet("lock", "FILE", "Encrypts FILE into a "+format.Active().Label+" container.")
	flags.StringVarP(&outputFlag, "output", "o", "", "Container path to write, defaults to FILE"+containerExt+".")
	flags.StringVarP(&typeFlag, "type", "t", "", "MIME type to record, detected from the file name and contents by default.")
	flags.BoolVarP(&generateFlag, "generate", "g", false, "Generate a strong password and print it to stdout, instead of asking for one.")
	flags.BoolVar(&forceWeakFlag, "force-weak", false, "Accept a password that fails the strength check.")
	flags.BoolVarP(&forceFlag, "force", "f", false, "Replace the output file if it exists.")
	flags.Duration("timeout", 0, "Give up waiting after this long, for example 30s.")
	if err := parse(flags, helpFlag, args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one FILE argument, got %d", flags.NArg())
	}

	input := flags.Arg(0)
	output := outputFlag
	if output == "" {
		output = input + containerExt
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	meta := passlock.Metadata{
		Name: filepath.Base(input),
		Type: typeFlag,
	}
	if meta.Type == "" {
		meta.Type = detectType(meta.Name, data)
	}
	log.Infof("Read %d bytes from '%s' (%s)", len(data), input, meta.Type)

	password, err := lockPassword(generateFlag, forceWeakFlag)
	if err != nil {
		return err
	}
	defer clear(password)

	log.Infof("Deriving key and encrypting with %s", format.Active())
	ctx, cancel := withTimeout(ctx, flags)
	defer cancel()
	encrypted, err := passlock.LockContext(ctx, data, meta, password)
	if err != nil {
		return err
	}
	if log.Debug {
		hdr, _, err := passlock.Inspect(encrypted)
		if err == nil {
			log.Debugf("salt=%x iv=%x", hdr.Salt, hdr.IV)
		}
	}

	if err := internal.WriteFileAtomic(output, encrypted, 0600, forceFlag); err != nil {
		return err
	}
	internal.Echo("Locked '%s' into '%s'", input, output)
	return nil
}

func lockPassword(generate, forceWeak bool) (passlock.Passphrase, error) {
	if generate {
		password, err := passgen.Generate(passgen.DefaultLength)
		if err != nil {
			return nil, err
		}
		fmt.Println(password)
		internal.Echo("Generated password printed above, store it safely. It can't be recovered.")
		return passlock.Passphrase(password), nil
	}

	password, err := internal.GetPassword(true)
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, passlock.ErrEmptyPassPhrase
	}
	res := strength.Analyze(string(password))
	log.Infof("Password strength: %s, about %d bits", res.Label, res.Bits)
	if res.Acceptable() {
		return password, nil
	}
	if forceWeak {
		log.Warnf("Using a weak password (%s)", res.Label)
		return password, nil
	}
	clear(password)
	detail := res.Label
	if res.Tip != "" {
		detail += ", " + strings.ToLower(res.Tip[:1]) + res.Tip[1:]
	}
	return nil, fmt.Errorf("%w: %s (use --force-weak to use it anyway)", errWeakPassword, detail)
}

// detectType guesses a MIME type from the file extension first, and the content second.
// Parameters like charset are dropped.
func detectType(name string, data []byte) string {
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mediaType
	}
	return "application/octet-stream"
}
