package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"addressvalidator/pkg/aggregator"
	apiParse "addressvalidator/pkg/api/parse"
	"addressvalidator/pkg/csvparser"
	"addressvalidator/pkg/lexicon"
	"addressvalidator/pkg/parser"
	"addressvalidator/pkg/streams"
)

var (
	logPath     string
	inputPath   string
	columnName  string
	lexiconPath string
	windows1252 bool
	verbose     bool
	logCfg      slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stdout")
	pflag.StringVarP(&inputPath, "input", "i", "addresses.csv", "path to CSV file with address blobs")
	pflag.StringVarP(&columnName, "column", "c", "Address", "name of the CSV column holding the address blobs")
	pflag.StringVarP(&lexiconPath, "lexicon", "x", "", "path to JSON file with extra community/county names")
	pflag.BoolVarP(&windows1252, "windows1252", "w", false, "decode the CSV file as Windows-1252")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %v", path, err)
	}
	return file, nil
}

// buildParser assembles the address parser, extending the default lexicon
// from the optional JSON document.
func buildParser(ctx context.Context) (apiParse.AddressParser, error) {
	if lexiconPath == "" {
		return parser.New()
	}
	source, err := open(lexiconPath)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	lex, err := lexicon.Extend(ctx, streams.NewJsonStream(source), lexicon.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon extension %q: %v", lexiconPath, err)
	}
	return parser.New(parser.WithLexicon(lex))
}

func main() {
	cmdLineParse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stdout
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	addrParser, err := buildParser(ctx)
	if err != nil {
		log.Fatalf("failed to create address parser: %v", err)
	}

	source, err := open(inputPath)
	if err != nil {
		log.Fatalf("failed to open address CSV file %q: %v", inputPath, err)
	}
	defer source.Close()

	var reader io.Reader = source
	if windows1252 {
		reader = transform.NewReader(source, charmap.Windows1252.NewDecoder())
	}

	csvStream, err := streams.NewCsvStream(reader)
	if err != nil {
		log.Fatalf("failed to create CSV stream: %v", err)
	}

	blobSource, err := csvparser.NewBlobSource(csvStream, csvparser.WithBlobColumn(columnName))
	if err != nil {
		log.Fatalf("failed to create blob source: %v", err)
	}

	calculator, err := aggregator.NewValiditySummary(addrParser)
	if err != nil {
		log.Fatalf("failed to create summary aggregator: %v", err)
	}

	blobs := make(chan string, 10000)
	go func() {
		if err := blobSource.ParseBlobs(ctx, blobs); err != nil {
			slog.Error("Error reading address blobs", "error", err)
		}
	}()

	result, err := calculator.Process(ctx, blobs)
	if err != nil {
		slog.Error("Error classifying addresses", "error", err)
		return
	}

	// Simulate JSON output with fmt.Printf
	fmt.Println("{")
	fmt.Printf("  \"total\": %d,\n", result.Total())
	fmt.Println("  \"validities\": [")
	validities := result.Validities()
	for i, v := range validities {
		comma := ","
		if i == len(validities)-1 {
			comma = ""
		}
		fmt.Printf("    {\"validity\":\"%s\",\"count\":%d,\"share\":\"%s\"}%s\n",
			v.Validity(), v.Count(), v.Share(), comma)
	}
	fmt.Println("  ],")
	fmt.Println("  \"missingRequired\": [")
	missing := result.MissingRequired()
	for i, m := range missing {
		comma := ","
		if i == len(missing)-1 {
			comma = ""
		}
		fmt.Printf("    {\"component\":\"%s\",\"count\":%d}%s\n",
			m.Component(), m.Count(), comma)
	}
	fmt.Println("  ]")
	fmt.Println("}")
}
