// ABOUTME: Entry point for the aacpipe encoder CLI
// ABOUTME: Parses flags, opens source and sink, runs the streaming encode
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aacpipe/aacpipe-go/internal/version"
	"github.com/aacpipe/aacpipe-go/pkg/aacenc"
	"github.com/aacpipe/aacpipe-go/pkg/audio/source"
)

var (
	inPath      = flag.String("in", "", "Input audio file (.wav, .mp3, .flac)")
	outPath     = flag.String("out", "out.aac", "Output bitstream file")
	bitrate     = flag.Uint("bitrate", 128000, "CBR target in bits per second")
	vbr         = flag.Int("vbr", 0, "VBR quality tier 1-5 (0 = CBR via -bitrate)")
	transport   = flag.String("transport", "adts", "Bitstream framing: adts or raw")
	pcmRate     = flag.Int("pcm-rate", 0, "Treat input as raw s16le stereo PCM at this sample rate")
	toneSecs    = flag.Float64("tone", 0, "Encode N seconds of a 440Hz test tone instead of a file")
	toneRate    = flag.Int("tone-rate", 44100, "Sample rate for -tone")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	src, err := openSource()
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer func() { _ = src.Close() }()

	params := aacenc.EncoderParams{
		BitRate:    aacenc.CBR(*bitrate),
		SampleRate: src.SampleRate(),
	}
	if *vbr != 0 {
		params.BitRate, err = vbrTier(*vbr)
		if err != nil {
			log.Fatalf("Invalid -vbr: %v", err)
		}
	}
	switch *transport {
	case "adts":
		params.Transport = aacenc.TransportADTS
	case "raw":
		params.Transport = aacenc.TransportRaw
	default:
		log.Fatalf("Invalid -transport %q (expected adts or raw)", *transport)
	}

	enc, err := aacenc.New(params)
	if err != nil {
		log.Fatalf("Failed to create encoder: %v", err)
	}
	defer func() { _ = enc.Close() }()

	info, err := enc.Info()
	if err != nil {
		log.Fatalf("Failed to query encoder geometry: %v", err)
	}
	log.Printf("Encoding %s: %d Hz, %d channels, %d samples/frame",
		params.BitRate, src.SampleRate(), info.InputChannels, info.FrameLength)

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer func() { _ = out.Close() }()

	stats, err := enc.Encode(src, out)
	if err != nil {
		log.Fatalf("Encode failed: %v", err)
	}
	tail, err := enc.Flush(out)
	if err != nil {
		log.Fatalf("Flush failed: %v", err)
	}

	log.Printf("Done: %d samples in, %d bytes out -> %s",
		stats.InputConsumed+tail.InputConsumed,
		stats.OutputSize+tail.OutputSize, *outPath)
}

func openSource() (source.Source, error) {
	switch {
	case *toneSecs > 0:
		duration := time.Duration(*toneSecs * float64(time.Second))
		return source.NewTone(*toneRate, duration), nil
	case *inPath == "":
		return nil, fmt.Errorf("no input: use -in or -tone")
	case *pcmRate > 0:
		f, err := os.Open(*inPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open PCM file: %w", err)
		}
		src, err := source.NewRaw(f, *pcmRate)
		if err != nil {
			f.Close()
			return nil, err
		}
		return src, nil
	default:
		return source.Open(*inPath)
	}
}

func vbrTier(tier int) (aacenc.BitRate, error) {
	switch tier {
	case 1:
		return aacenc.VBRVeryLow, nil
	case 2:
		return aacenc.VBRLow, nil
	case 3:
		return aacenc.VBRMedium, nil
	case 4:
		return aacenc.VBRHigh, nil
	case 5:
		return aacenc.VBRVeryHigh, nil
	}
	return aacenc.BitRate{}, fmt.Errorf("tier %d out of range 1-5", tier)
}
