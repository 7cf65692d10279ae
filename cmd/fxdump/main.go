// Command fxdump converts between a persisted stream of decimal values and
// text.
//
// By default the stream is read from the input (a file or stdin) and each
// value is printed on its own line. With -encode the input is read as one
// value per line and the stream is written instead.
//
//	fxdump -decimals 2 prices.bin
//	fxdump -dynamic -json < ledger.bin
//	printf '1.50\n0.25\n' | fxdump -encode -decimals 2 > prices.bin
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/decimal"
)

type config struct {
	schema decimal.Schema

	encode bool
	json   bool
	debug  bool

	input string
}

func parse(args []string, output io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("fxdump", flag.ContinueOnError)
	fs.SetOutput(output)

	var decimals uint

	fs.UintVar(&decimals, "decimals", 0, "decimal places of every value (static streams)")
	fs.BoolVar(&cfg.schema.Dynamic, "dynamic", false, "values carry their own decimal places")
	fs.BoolVar(&cfg.schema.Nullable, "nullable", false, "allow null values")
	fs.IntVar(&cfg.schema.MaxBytes, "max-bytes", 0, "maximum mantissa size in bytes (0 is unbounded)")
	fs.BoolVar(&cfg.encode, "encode", false, "read text values and write the stream")
	fs.BoolVar(&cfg.json, "json", false, "use the JSON form for text values")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	if decimals > 255 {
		return nil, fmt.Errorf("invalid -decimals %d", decimals)
	}

	cfg.schema.Decimals = uint8(decimals)

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one input, got %d", fs.NArg())
	}

	return cfg, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}

	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return zc.Build(zap.AddStacktrace(zapcore.PanicLevel))
}

func run(logger *zap.Logger, cfg *config, stdin io.Reader, stdout io.Writer) (err error) {
	r := stdin

	if cfg.input != "" && cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()

		r = f
	}

	w := bufio.NewWriter(stdout)
	defer func() {
		ferr := w.Flush()
		if err == nil {
			err = ferr
		}
	}()

	var n int
	if cfg.encode {
		n, err = encode(logger, cfg, r, w)
	} else {
		n, err = dump(logger, cfg, r, w)
	}

	logger.Info("done",
		zap.Bool("encode", cfg.encode),
		zap.Int("values", n),
		zap.Error(err),
	)

	return err
}

// dump decodes the stream in r and writes one value per line to w.
func dump(logger *zap.Logger, cfg *config, r io.Reader, w io.Writer) (n int, err error) {
	d := decimal.NewDecoder(cfg.schema, control.NewDecoder(r))

	for ; ; n++ {
		s, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return n, nil
		}

		if err != nil {
			return n, fmt.Errorf("value %d: %w", n, err)
		}

		line, err := format(cfg, s)
		if err != nil {
			return n, err
		}

		logger.Debug("decoded", zap.Int("index", n), zap.String("value", line))

		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return n, err
		}
	}
}

func format(cfg *config, s *decimal.Scaled) (string, error) {
	if s == nil {
		return "null", nil
	}

	if cfg.json {
		data, err := s.MarshalJSON()

		return string(data), err
	}

	return s.String(), nil
}

// encode reads one value per line from r and writes the stream to w. Blank
// lines are skipped.
func encode(logger *zap.Logger, cfg *config, r io.Reader, w io.Writer) (n int, err error) {
	e := decimal.NewEncoder(cfg.schema, control.NewEncoder(w))

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		s, err := scan(cfg, text)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}

		err = e.Encode(s)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}

		logger.Debug("encoded", zap.Int("line", line), zap.String("value", text))

		n++
	}

	return n, sc.Err()
}

func scan(cfg *config, text string) (*decimal.Scaled, error) {
	if text == "null" {
		return nil, nil
	}

	var (
		s   decimal.Scaled
		err error
	)

	switch {
	case cfg.json:
		err = s.UnmarshalJSON([]byte(text))
	case cfg.schema.Dynamic:
		err = s.UnmarshalText([]byte(text))
	default:
		s, err = decimal.ParseScaled(text, cfg.schema.Decimals)
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func main() {
	cfg, err := parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.debug)
	if err != nil {
		panic(fmt.Errorf("error create logger: %w", err))
	}

	err = run(logger, cfg, os.Stdin, os.Stdout)
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
