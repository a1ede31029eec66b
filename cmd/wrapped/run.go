/*Report pipeline*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/voidshard/wrapped/pkg/categorize"
	"github.com/voidshard/wrapped/pkg/crypto"
	"github.com/voidshard/wrapped/pkg/domain"
	"github.com/voidshard/wrapped/pkg/insights"
	"github.com/voidshard/wrapped/pkg/logger"
	"github.com/voidshard/wrapped/pkg/provider"
	"github.com/voidshard/wrapped/pkg/store"
)

// Run loads the export, analyses it and writes the report to the configured sink.
// Nothing is written anywhere if loading fails.
func (c *cli) Run(ctx context.Context) (*domain.Report, error) {
	log := logger.FromContext(ctx)

	table, err := categorize.LoadTable(c.Categories)
	if err != nil {
		return nil, err
	}

	storage, err := store.New(c.Out, store.Options{SealKey: c.SealKey, SignKey: c.SignKey, Log: log})
	if err != nil {
		return nil, err
	}

	data, err := c.input()
	if err != nil {
		return nil, err
	}

	var source provider.Provider = provider.NewCSVExport(data, log)
	txns, err := source.Transactions()
	if err != nil {
		return nil, err
	}

	report := insights.NewAnalyzer(categorize.NewCategorizer(table), log).Build(txns)

	if c.Out != "" {
		log.Info().Str("out", c.Out).Msg("writing report")
	}
	err = storage.Write(report)
	if err != nil {
		return nil, fmt.Errorf("could not write report to %s: %w", c.Out, err)
	}

	return report, nil
}

// input reads the export, opening it first if it was sealed.
func (c *cli) input() ([]byte, error) {
	data, err := ioutil.ReadFile(c.File)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, c.File)
	} else if err != nil {
		return nil, err
	}

	if !c.Sealed {
		return data, nil
	}

	sealer, err := crypto.NewSealer(c.SealKey, c.SignKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUsage, err)
	}

	data, err = sealer.Open(data)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open sealed file %s: %v", domain.ErrParsing, c.File, err)
	}
	return data, nil
}
