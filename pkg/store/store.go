package store

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/voidshard/wrapped/pkg/crypto"
	"github.com/voidshard/wrapped/pkg/domain"
)

const (
	SchemeJSONFile = "jsonfile"
	SchemeES8      = "es8"
	SchemeSealed   = "sealed"
)

// Options carries what some sinks need beyond their path.
type Options struct {
	// SealKey and SignKey are required by the sealed sink.
	SealKey string
	SignKey string

	Log zerolog.Logger
}

// Nop discards the report.
type Nop struct{}

func (Nop) Write(*domain.Report) error { return nil }

// New picks a sink from an out string of the form scheme:path, eg.
// jsonfile:/tmp/report.json, es8:http://localhost:9200 or sealed:/tmp/report.blob.
// A bare es8: takes its address from the environment. An empty string gives Nop.
func New(out string, opts Options) (Store, error) {
	if out == "" {
		return Nop{}, nil
	}

	bits := strings.SplitN(out, ":", 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("invalid out path %q, expected [jsonfile:/path/to/file.json] [es8:http://elasticsearch:9200] or [sealed:/path/to/file]", out)
	}
	scheme, path := bits[0], bits[1]

	if scheme == SchemeES8 {
		if path == "" {
			// address from ELASTICSEARCH_SERVICE_HOST / _PORT
			return NewElasticsearchV8(opts.Log), nil
		}
		return NewElasticsearchV8(opts.Log, path), nil
	}

	if path == "" {
		return nil, fmt.Errorf("invalid out path %q, %s needs a file path", out, scheme)
	}

	switch scheme {
	case SchemeJSONFile:
		return NewJSONFile(path), nil
	case SchemeSealed:
		sealer, err := crypto.NewSealer(opts.SealKey, opts.SignKey)
		if err != nil {
			return nil, err
		}
		return NewSealedFile(path, sealer), nil
	}

	return nil, fmt.Errorf("unknown out scheme %q", scheme)
}
