/*Basic command structure*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/voidshard/wrapped/pkg/domain"
	"github.com/voidshard/wrapped/pkg/logger"
)

// cli args & options available
type cli struct {
	File string `arg:"" help:"Payment history export (CSV) to analyse."`

	Out        string `env:"WRAPPED_OUT" help:"Also write the report to [jsonfile:/path/file.json es8:http://myelasticsearch:9200 sealed:/path/file.blob]"`
	Categories string `env:"WRAPPED_CATEGORIES" help:"YAML category table to use instead of the built in one."`
	Sealed     bool   `help:"Input file was sealed with WRAPPED_SEAL_KEY and WRAPPED_SIGN_KEY."`
	LogLevel   string `env:"WRAPPED_LOG_LEVEL" default:"warn" help:"Log level, logs go to stderr."`

	SealKey string `env:"WRAPPED_SEAL_KEY" hidden:"" help:"Encryption key, at least 32 chars."`
	SignKey string `env:"WRAPPED_SIGN_KEY" hidden:"" help:"Signing key, at least 32 chars."`
}

type successEnvelope struct {
	Success bool           `json:"success"`
	Data    *domain.Report `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, builds the report and prints the result envelope to stdout.
// Logs go to stderr. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// a missing .env is fine, settings may come from the real environment or flags
	_ = godotenv.Load()

	c := &cli{}
	parser, err := kong.New(c,
		kong.Name("wrapped"),
		kong.Description("Summarise a year of payments into a wrapped style report."),
	)
	if err != nil {
		return respond(stdout, nil, err)
	}

	_, err = parser.Parse(args)
	if err != nil {
		return respond(stdout, nil, fmt.Errorf("%w: %v", domain.ErrUsage, err))
	}

	log := logger.WithFields(logger.NewConsole(stderr, c.LogLevel), map[string]interface{}{
		"file": c.File,
	})
	report, err := c.Run(logger.WithContext(context.Background(), log))
	if err != nil {
		log.Error().Err(err).Msg("failed to build report")
	}

	return respond(stdout, report, err)
}

func respond(w io.Writer, report *domain.Report, err error) int {
	var body interface{} = &successEnvelope{Success: true, Data: report}
	code := 0
	if err != nil {
		body = &errorEnvelope{Error: err.Error()}
		code = 1
	}

	data, merr := json.Marshal(body)
	if merr != nil {
		data, _ = json.Marshal(&errorEnvelope{Error: merr.Error()})
		code = 1
	}

	fmt.Fprintln(w, string(data))
	return code
}
