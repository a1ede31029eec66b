package store

import (
	"io/ioutil"

	"github.com/voidshard/wrapped/pkg/crypto"
	"github.com/voidshard/wrapped/pkg/domain"
)

// SealedFile writes the report JSON encrypted and signed, readable only with the same keys.
type SealedFile struct {
	filename string
	sealer   *crypto.Sealer
}

func NewSealedFile(filename string, sealer *crypto.Sealer) Store {
	return &SealedFile{filename: filename, sealer: sealer}
}

func (f *SealedFile) Write(r *domain.Report) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}

	blob, err := f.sealer.Seal(data)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(f.filename, blob, 0600)
}
