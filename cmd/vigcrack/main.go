// Command vigcrack recovers the key of Vigenère ciphertext and decrypts it.
//
// Usage:
//
//	vigcrack [flags] [file|glob ...]
//
// Without arguments it reads standard input. Glob arguments support "**".
//
// Examples:
//
//	vigcrack ciphertext.txt
//	vigcrack -signal -max-shift 60 ciphertext.txt
//	vigcrack 'samples/**/*.txt'
//	vigcrack -encrypt LEMON plain.txt > ciphertext.txt
//	vigcrack -decrypt LEMON ciphertext.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vigenere/analysis/keylength"
	"github.com/cwbudde/algo-vigenere/cipher/alphabet"
	"github.com/cwbudde/algo-vigenere/cipher/vigenere"
	"github.com/cwbudde/algo-vigenere/crack"
	"github.com/cwbudde/algo-vigenere/internal/logger"
	"github.com/cwbudde/algo-vigenere/internal/textio"
	"github.com/cwbudde/algo-vigenere/stats/coincidence"
)

const separator = "________________________________________________________________________________"

type options struct {
	capacity  int
	maxShift  int
	threshold float64
	method    coincidence.Method
	signal    bool
	encrypt   string
	decrypt   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vigcrack", flag.ContinueOnError)
	fs.SetOutput(stderr)

	capacity := fs.Int("capacity", alphabet.DefaultCapacity, "maximum decoded input size in UTF-8 bytes (0 = unbounded)")
	maxShift := fs.Int("max-shift", keylength.DefaultMaxShift, "exclusive upper bound on coincidence shifts")
	threshold := fs.Float64("threshold", keylength.DefaultThresholdFactor, "crossing threshold in standard deviations above the mean")
	method := fs.String("method", "auto", "coincidence computation: auto, direct or fft")
	signal := fs.Bool("signal", false, "print the coincidence signal and threshold")
	encrypt := fs.String("encrypt", "", "encrypt the input with `KEY` instead of analysing it")
	decrypt := fs.String("decrypt", "", "decrypt the input with `KEY` instead of analysing it")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vigcrack [flags] [file|glob ...]\n\n")
		fmt.Fprintf(stderr, "Recovers the key of Vigenère ciphertext and prints it with the plaintext.\n")
		fmt.Fprintf(stderr, "Reads standard input when no files are given.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vigcrack ciphertext.txt\n")
		fmt.Fprintf(stderr, "  vigcrack -signal 'samples/**/*.txt'\n")
		fmt.Fprintf(stderr, "  vigcrack -encrypt LEMON plain.txt\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	log, err := logger.Init(logger.Config{Level: level, Format: *logFormat, Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	m, err := coincidence.ParseMethod(*method)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if *encrypt != "" && *decrypt != "" {
		fmt.Fprintf(stderr, "error: -encrypt and -decrypt are mutually exclusive\n")
		return 2
	}

	opts := options{
		capacity:  *capacity,
		maxShift:  *maxShift,
		threshold: *threshold,
		method:    m,
		signal:    *signal,
		encrypt:   strings.ToUpper(*encrypt),
		decrypt:   strings.ToUpper(*decrypt),
	}

	names, err := textio.Expand(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	status := 0
	for _, name := range names {
		src, err := textio.Open(name, stdin)
		if err != nil {
			log.Error("cannot read input", "input", name, "err", err)
			status = 1
			continue
		}
		log.Debug("read input", "input", src.Name, "bytes", len(src.Text), "encoding", src.Encoding)

		if len(names) > 1 {
			fmt.Fprintf(stdout, "==> %s <==\n", src.Name)
		}
		if err := process(stdout, src, opts, log); err != nil {
			log.Error("analysis failed", "input", src.Name, "err", err)
			status = 1
		}
	}

	return status
}

func process(w io.Writer, src textio.Source, opts options, log *slog.Logger) error {
	switch {
	case opts.encrypt != "":
		out, err := vigenere.Encrypt(src.Text, opts.encrypt)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case opts.decrypt != "":
		out, err := vigenere.Decrypt(src.Text, opts.decrypt)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	res, err := crack.Crack(src.Text,
		crack.WithCapacity(opts.capacity),
		crack.WithMaxShift(opts.maxShift),
		crack.WithThresholdFactor(opts.threshold),
		crack.WithMethod(opts.method),
		crack.WithLogger(log.With("input", src.Name)),
	)
	if opts.signal && res.Estimate.Signal != nil {
		if perr := printSignal(w, res.Estimate); perr != nil {
			return perr
		}
	}
	if err != nil {
		return err
	}

	return printReport(w, res)
}

func printReport(w io.Writer, res crack.Result) error {
	_, err := fmt.Fprintf(w, "The probable key is: %s\nThe key length is: %d\n%s\n\nDecrypted Message is as follows :\n\n%s\n\n",
		res.Key, res.KeyLength, separator, res.Plaintext)
	return err
}

func printSignal(w io.Writer, est keylength.Result) error {
	crossing := make(map[int]bool, len(est.Crossings.Shifts))
	for _, s := range est.Crossings.Shifts {
		crossing[s] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Shift\tCount\tCrossing\n-----\t-----\t--------\n"); err != nil {
		return fmt.Errorf("failed to write signal header: %w", err)
	}
	for i, v := range est.Signal {
		mark := ""
		if crossing[i+1] {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\n", i+1, v, mark); err != nil {
			return fmt.Errorf("failed to write signal row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush signal table: %w", err)
	}

	_, err := fmt.Fprintf(w, "mean=%.4f sigma=%.4f threshold=%.4f crossings=%s gaps=%v\n\n",
		est.Summary.Mean, est.Summary.StdDev, est.Threshold, est.Crossings.State(), est.Gaps)
	return err
}
