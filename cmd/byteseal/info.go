package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/byteseal/pkg/format"
	"github.com/saylorsolutions/byteseal/pkg/passgen"
	"github.com/saylorsolutions/byteseal/pkg/passlock"
)

func runInfo(args []string) error {
	flags, helpFlag := newFlagSet("info", "FILE", "Shows the header of a container without decrypting it.")
	if err := parse(flags, helpFlag, args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one FILE argument, got %d", flags.NArg())
	}
	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	hdr, desc, err := passlock.Inspect(data)
	if err != nil {
		return err
	}
	fmt.Printf("Format:      %s\n", desc.Label)
	fmt.Printf("ID:          %s\n", desc.ID)
	fmt.Printf("Version:     %d\n", hdr.Version)
	fmt.Printf("Active:      %t\n", desc.ID == format.Active().ID)
	fmt.Printf("Salt:        %x\n", hdr.Salt)
	fmt.Printf("IV:          %x\n", hdr.IV)
	fmt.Printf("Cipher text: %d bytes\n", len(data)-passlock.HeaderLen)
	return nil
}

func runFormats(args []string) error {
	flags, helpFlag := newFlagSet("formats", "", "Lists the container formats this build understands. New containers always use the active format.")
	if err := parse(flags, helpFlag, args); err != nil {
		return err
	}
	for _, desc := range format.All() {
		marker := " "
		if desc.ID == format.Active().ID {
			marker = "*"
		}
		fmt.Printf("%s %-14s %-14s version %d  magic %q\n", marker, desc.ID, desc.Label, desc.Version, desc.Magic[:])
	}
	return nil
}

func runGenpass(args []string) error {
	var lengthFlag int
	flags, helpFlag := newFlagSet("genpass", "", "Prints a strong random password.")
	flags.IntVarP(&lengthFlag, "length", "n", passgen.DefaultLength, fmt.Sprintf("Password length, at least %d.", passgen.MinLength))
	if err := parse(flags, helpFlag, args); err != nil {
		return err
	}
	if lengthFlag < passgen.MinLength {
		log.Warnf("Length %d is below the minimum, using %d", lengthFlag, passgen.MinLength)
	}
	password, err := passgen.Generate(lengthFlag)
	if err != nil {
		return err
	}
	fmt.Println(password)
	return nil
}
