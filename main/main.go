// ucwire-dump reads a hex-encoded byte stream captured from a serial link
// and prints every valid packet it finds, resynchronizing across garbage.
//
//	ucwire-dump 4102010223d8
//	cat capture.hex | ucwire-dump -config markers.toml
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rawbytedev/ucwire"
)

func main() {
	configPath := flag.String("config", "", "TOML file with start_marker/stop_marker overrides")
	verbose := flag.Bool("v", false, "log discarded bytes while resyncing")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("bad config")
		}
	}
	log.Debug().
		Str("start", string(cfg.Start)).
		Str("stop", string(cfg.Stop)).
		Msg("markers")

	codec := ucwire.New(cfg.Start, cfg.Stop)
	scanner := ucwire.NewScanner(codec)

	packets := 0
	dump := func(chunk string) {
		raw, err := hex.DecodeString(strings.TrimSpace(chunk))
		if err != nil {
			log.Fatal().Err(err).Msg("input is not hex")
		}
		scanner.Push(raw)
		for {
			payload, err := scanner.Next()
			if err != nil {
				break // incomplete, wait for more input
			}
			packets++
			log.Info().
				Int("n", packets).
				Int("len", len(payload)).
				Str("payload", hex.EncodeToString(payload)).
				Msg("packet")
		}
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			dump(arg)
		}
	} else {
		in := bufio.NewScanner(os.Stdin)
		for in.Scan() {
			dump(in.Text())
		}
		if err := in.Err(); err != nil {
			log.Fatal().Err(err).Msg("read stdin")
		}
	}

	if n := scanner.Dropped(); n > 0 {
		log.Debug().Int("bytes", n).Msg("discarded while resyncing")
	}
	if rest := scanner.Buffered(); rest > 0 {
		log.Warn().Int("bytes", rest).Msg("trailing partial packet")
	}
	log.Info().Int("packets", packets).Msg("done")
}
