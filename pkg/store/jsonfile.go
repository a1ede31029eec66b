package store

import (
	"io/ioutil"

	"github.com/voidshard/wrapped/pkg/domain"
)

type JSONFile struct {
	filename string
}

func NewJSONFile(filename string) Store {
	return &JSONFile{filename: filename}
}

func (f *JSONFile) Write(r *domain.Report) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(f.filename, data, 0644)
}
