package sheets

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"dealership-concierge/internal/lead"
	"dealership-concierge/internal/lead/repository"
	pkgLog "dealership-concierge/pkg/log"
)

// Client is the subset of the Sheets API the repository needs.
type Client interface {
	ReadRange(ctx context.Context, readRange string) ([][]interface{}, error)
	AppendRow(ctx context.Context, appendRange string, row []interface{}) error
	UpdateRow(ctx context.Context, updateRange string, row []interface{}) error
}

// cachedLead pairs a lead snapshot with its spreadsheet row number.
type cachedLead struct {
	lead *lead.Lead
	row  int
}

type sheetsRepo struct {
	client Client
	l      pkgLog.Logger
	cache  *expirable.LRU[string, cachedLead]
}

var _ repository.LeadRepository = (*sheetsRepo)(nil)

// New creates a Sheets-backed lead repository with a phone→row cache so a
// multi-message conversation does not rescan the sheet on every turn.
func New(client Client, l pkgLog.Logger) *sheetsRepo {
	return &sheetsRepo{
		client: client,
		l:      l,
		cache:  expirable.NewLRU[string, cachedLead](cacheSize, nil, cacheTTL),
	}
}

const (
	cacheSize = 512
	cacheTTL  = 5 * time.Minute
)
