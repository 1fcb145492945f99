package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/newgrf/yagl/yagl"
	"github.com/newgrf/yagl/cmd/internal/errors"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: yagl <command> -in <file> -out <file>

commands:
  decode   read a binary NewGRF package and print its YAGL text form
  encode   read a YAGL text form and write the binary NewGRF package
  dump     read a binary NewGRF package and re-emit it unchanged (round-trip check)

`)
	flag.PrintDefaults()
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	in := fs.String("in", "", "input file, defaults to stdin")
	out := fs.String("out", "", "output file, defaults to stdout")
	fs.Parse(os.Args[2:])

	var err error
	switch cmd {
	case "decode":
		err = decode(*in, *out)
	case "encode":
		err = encode(*in, *out)
	case "dump":
		err = dump(*in, *out)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openIn(path string) (*os.File, error) {
	if path == "" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func createOut(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func decode(inPath, outPath string) error {
	in, err := openIn(inPath)
	if err != nil {
		return err
	}
	out, err := createOut(outPath)
	if err != nil {
		return err
	}

	var errs errors.List
	pkg, err := yagl.Decode(in)
	errs = errs.Add(closeIfFile(in))
	if err != nil {
		return errs.Add(err).Errorf("decode %s: %w", inPath, err)
	}

	printErr := yagl.Print(pkg, out, nil)
	errs = errs.Add(closeIfFile(out))
	if printErr != nil {
		return errs.Add(printErr).Errorf("print %s: %w", outPath, printErr)
	}
	if errs != nil {
		return errs
	}
	return nil
}

func encode(inPath, outPath string) error {
	in, err := openIn(inPath)
	if err != nil {
		return err
	}
	out, err := createOut(outPath)
	if err != nil {
		return err
	}

	pkg, err := yagl.Parse(in, nil)
	closeErr := closeIfFile(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	data, err := yagl.Encode(pkg)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return err
	}

	var errs errors.List
	errs = errs.Add(closeErr, closeIfFile(out))
	if errs != nil {
		return errs
	}
	return nil
}

func dump(inPath, outPath string) error {
	in, err := openIn(inPath)
	if err != nil {
		return err
	}
	out, err := createOut(outPath)
	if err != nil {
		return err
	}

	pkg, err := yagl.Decode(in)
	closeErr := closeIfFile(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	data, err := yagl.Encode(pkg)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return err
	}

	var errs errors.List
	errs = errs.Add(closeErr, closeIfFile(out))
	if errs != nil {
		return errs
	}
	return nil
}

// closeIfFile closes f unless it is stdin/stdout, which callers must
// not close.
func closeIfFile(f *os.File) error {
	if f == os.Stdin || f == os.Stdout {
		return nil
	}
	return f.Close()
}
