package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/voidshard/wrapped/pkg/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// from https://github.com/elastic/go-elasticsearch/blob/master/_examples/bulk/indexer.go

const (
	esIndex = "wrapped"
	esFlush = 2048

	envEsAddr = "ELASTICSEARCH_SERVICE_HOST"
	envEsPort = "ELASTICSEARCH_SERVICE_PORT"
)

// ElasticsearchV8 indexes each report section as its own document.
type ElasticsearchV8 struct {
	addresses []string
	log       zerolog.Logger
}

// sectionDocument is one indexed report section. Documents of the same report share a
// ReportID derived from the report content, so re-indexing a report overwrites it.
type sectionDocument struct {
	ReportID string      `json:"report_id"`
	Section  string      `json:"section"`
	Body     interface{} `json:"body"`
}

func (d *sectionDocument) id() string {
	return fmt.Sprintf("%s-%s", d.ReportID, d.Section)
}

func NewElasticsearchV8(log zerolog.Logger, urls ...string) Store {
	if len(urls) == 0 {
		address := os.Getenv(envEsAddr)
		port := os.Getenv(envEsPort)
		if port == "" {
			port = "9200" // default port
		}
		if address == "" {
			address = "localhost" // default address
		}
		urls = []string{fmt.Sprintf("http://%s:%s", address, port)}
	}

	return &ElasticsearchV8{addresses: urls, log: log}
}

// ReportID is a UUIDv5 of the report JSON.
func ReportID(r *domain.Report) (string, error) {
	data, err := r.JSON()
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, data).String(), nil
}

func documents(r *domain.Report) ([]*sectionDocument, error) {
	id, err := ReportID(r)
	if err != nil {
		return nil, err
	}

	docs := []*sectionDocument{}
	for _, s := range r.Sections() {
		docs = append(docs, &sectionDocument{ReportID: id, Section: s.Name, Body: s.Body})
	}
	return docs, nil
}

func (e *ElasticsearchV8) Write(r *domain.Report) error {
	docs, err := documents(r)
	if err != nil {
		return err
	}

	retryBackoff := backoff.NewExponentialBackOff()

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: e.addresses,

		// Retry on 429 TooManyRequests statuses
		RetryOnStatus: []int{502, 503, 504, 429},

		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		MaxRetries: 5,
	})
	if err != nil {
		return err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         esIndex,
		FlushBytes:    esFlush,
		Client:        es,
		NumWorkers:    2,
		FlushInterval: 10 * time.Second,
	})
	if err != nil {
		return err
	}

	res, err := es.Indices.Create(esIndex)
	if err != nil {
		e.log.Debug().Err(err).Str("index", esIndex).Msg("attempted to make index")
	} else {
		res.Body.Close()
	}

	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		section := doc.Section
		err = bi.Add(
			context.Background(),
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.id(),
				Body:       bytes.NewReader(data),
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					if err != nil {
						e.log.Error().Err(err).Str("section", section).Msg("failed to index report section")
					} else {
						e.log.Error().Str("section", section).Str("type", res.Error.Type).Msg(res.Error.Reason)
					}
				},
			},
		)
		if err != nil {
			return err
		}
	}

	err = bi.Close(context.Background())
	if err != nil {
		return err
	}

	biStats := bi.Stats()
	if biStats.NumFailed > 0 {
		return fmt.Errorf("failed indexing %d of %d report sections", biStats.NumFailed, len(docs))
	}

	e.log.Info().Uint64("sections", biStats.NumFlushed).Str("index", esIndex).Msg("indexed report")
	return nil
}
