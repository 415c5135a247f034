// Command randgen streams raw generator output to stdout, mainly for
// feeding statistical test suites such as PractRand or dieharder:
//
//	randgen -gen isaac64 -seed 42 | RNG_test stdin64
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/nixpulvis/rand/pkg/logging"
	"github.com/nixpulvis/rand/pkg/rng"
	"github.com/nixpulvis/rand/pkg/rng/chacha"
	"github.com/nixpulvis/rand/pkg/rng/isaac"
	"github.com/nixpulvis/rand/pkg/rng/osrand"
	"github.com/nixpulvis/rand/pkg/rng/std"
	"github.com/nixpulvis/rand/pkg/rng/xorshift"
)

const chunkSize = 1 << 16

type cliOptions struct {
	generator string
	seed      uint64
	seeded    bool
	count     int64
	logLevel  int
	logPath   string
}

func getOptions() cliOptions {
	var result cliOptions
	flag.StringVar(&result.generator, "gen", "std", "generator to run (std, isaac, isaac64, xorshift, chacha, os)")
	flag.Uint64Var(&result.seed, "seed", 0, "a numeric seed; omit for OS-seeded output")
	flag.Int64Var(&result.count, "n", 0, "number of bytes to produce (0 means unbounded)")
	flag.IntVar(&result.logLevel, "log_level", 1, "logging level (0-debug 1-info 2-warn 3-error)")
	flag.StringVar(&result.logPath, "log", "stderr", "log destination")
	flag.Parse()
	result.seeded = false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			result.seeded = true
		}
	})
	return result
}

func makeSource(options cliOptions) (rng.Source, error) {
	switch options.generator {
	case "std":
		if options.seeded {
			return std.NewFromPhrase(fmt.Sprint(options.seed)), nil
		}
		return std.New()

	case "isaac":
		if options.seeded {
			return isaac.NewIsaacFromSeed([]uint32{uint32(options.seed), uint32(options.seed >> 32)}), nil
		}
		return isaac.NewIsaacFromSource(osrand.New())

	case "isaac64":
		if options.seeded {
			return isaac.NewIsaac64FromSeed([]uint64{options.seed}), nil
		}
		return isaac.NewIsaac64FromSource(osrand.New())

	case "xorshift":
		if options.seeded {
			return xorshift.NewXorShiftFromSeed([4]uint32{uint32(options.seed), uint32(options.seed >> 32), 1, 0}), nil
		}
		return xorshift.NewXorShiftFromSource(osrand.New())

	case "chacha":
		if options.seeded {
			var key [chacha.KeySize]byte
			for i := 0; i < 8; i++ {
				key[i] = byte(options.seed >> (8 * i))
			}
			return chacha.NewChaChaFromSeed(key), nil
		}
		return chacha.NewChaChaFromSource(osrand.New())

	case "os":
		return osrand.New(), nil
	}
	return nil, fmt.Errorf("unknown generator %q", options.generator)
}

func main() {
	options := getOptions()
	err := logging.InitLogger(logging.LogConfig{
		Level:    options.logLevel,
		Path:     options.logPath,
		DiodeBuf: 1024,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid logging configuration:", err)
		os.Exit(1)
	}

	src, err := makeSource(options)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot construct generator")
	}
	log.Info().Str("gen", options.generator).Bool("seeded", options.seeded).Int64("n", options.count).Msg("streaming")

	out := bufio.NewWriterSize(os.Stdout, chunkSize)
	defer out.Flush()

	buf := make([]byte, chunkSize)
	var written int64
	for options.count == 0 || written < options.count {
		chunk := buf
		if options.count != 0 && options.count-written < chunkSize {
			chunk = buf[:options.count-written]
		}
		if err := src.TryFill(chunk); err != nil {
			var rerr *rng.Error
			if errors.As(err, &rerr) {
				log.Fatal().Err(err).Str("details", rerr.Details()).Msg("generator failed")
			}
			log.Fatal().Err(err).Msg("generator failed")
		}
		if _, err := out.Write(chunk); err != nil {
			// broken pipe when the consumer stops reading; not an error
			log.Info().Err(err).Int64("written", written).Msg("output closed")
			return
		}
		written += int64(len(chunk))
	}
	log.Info().Int64("written", written).Msg("done")
}
