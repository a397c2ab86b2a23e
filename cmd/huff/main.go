package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	huffman "github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

const defaultContent = "This course is hard."

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: huff [flags] c|d <input> <output>\n")
	flag.PrintDefaults()
}

func main() {
	var verbose, verify, create bool
	flag.BoolVar(&verbose, "v", false, "dump the code table to stderr")
	flag.BoolVar(&verify, "verify", false, "after compressing, decode the output and compare digests")
	flag.BoolVar(&create, "create", false, "when compressing, create a missing input file with default content")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 || (args[0] != "c" && args[0] != "d") {
		usage()
		os.Exit(2)
	}

	logg := logger.New(os.Stderr)
	opts := options{verbose: verbose, verify: verify, create: create, dump: os.Stderr}

	var err error
	switch args[0] {
	case "c":
		err = compress(logg, opts, args[1], args[2])
	case "d":
		err = decompress(logg, opts, args[1], args[2])
	}
	if err != nil {
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	verify  bool
	create  bool
	dump    io.Writer
}

func compress(logg logger.Logger, opts options, src, dst string) error {
	if opts.create {
		if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(src, []byte(defaultContent), 0o666); err != nil {
				return err
			}
			logg.Infof("created file %s", src)
		}
	}

	stats, err := huffman.CompressFile(src, dst)
	if errors.Is(err, huffman.ErrNotFound) {
		return fmt.Errorf("no such source file %s", src)
	}
	if err != nil {
		return err
	}

	change := "decrease"
	if stats.OutputSize > stats.InputSize {
		change = "increase"
	}
	logg.Infof("file %s compressed from %d bytes to %d bytes, %.2f%% of the original (%s)",
		src, stats.InputSize, stats.OutputSize, stats.Ratio()*100, change)

	if !opts.verbose && !opts.verify {
		return nil
	}

	c, _, err := huffman.LoadContainer(dst)
	if err != nil {
		return err
	}
	if opts.verbose {
		_, _ = c.Table.Dump(opts.dump)
	}
	if opts.verify {
		data, err := huffman.Decompress(c)
		if err != nil {
			return err
		}
		if digest := xxhash.Sum64(data); digest != stats.Digest {
			return fmt.Errorf("verify %s: digest %016x does not match input digest %016x", dst, digest, stats.Digest)
		}
		logg.Infof("verified %s: digest %016x", dst, stats.Digest)
	}
	return nil
}

func decompress(logg logger.Logger, opts options, src, dst string) error {
	if opts.verbose {
		c, _, err := huffman.LoadContainer(src)
		if err != nil {
			return err
		}
		_, _ = c.Table.Dump(opts.dump)
	}

	stats, err := huffman.DecompressFile(src, dst)
	if errors.Is(err, huffman.ErrNotFound) {
		return fmt.Errorf("no such source file %s", src)
	}
	if err != nil {
		return err
	}

	logg.Infof("file %s decompressed from %d bytes to %d bytes (digest %016x)",
		src, stats.InputSize, stats.OutputSize, stats.Digest)
	return nil
}
