package provider

import (
	"github.com/voidshard/wrapped/pkg/domain"
)

// Provider yields normalized payment transactions ready for analysis.
type Provider interface {
	Transactions() ([]*domain.Transaction, error)
}
