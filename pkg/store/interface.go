package store

import (
	"github.com/voidshard/wrapped/pkg/domain"
)

// Store is somewhere a finished report is written to.
type Store interface {
	Write(*domain.Report) error
}
