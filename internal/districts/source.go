package districts

import (
	"context"

	"go.uber.org/zap"

	"regiontrip/internal/domain"
)

// Fetcher is the strict side of district retrieval.
type Fetcher interface {
	FetchDistricts(ctx context.Context, province domain.RegionCode) ([]domain.District, error)
}

// Source adapts a Fetcher to domain.DistrictSource: failures are logged as
// warnings and turned into an empty result.
type Source struct {
	fetcher Fetcher
	log     *zap.Logger
}

// NewSource returns a Source over f. A nil logger discards warnings.
func NewSource(f Fetcher, log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{fetcher: f, log: log}
}

// Districts fetches the districts of province, once.
func (s *Source) Districts(ctx context.Context, province domain.RegionCode) []domain.District {
	ds, err := s.fetcher.FetchDistricts(ctx, province)
	if err != nil {
		s.log.Warn("fetching districts failed",
			zap.String("province", province.String()),
			zap.Error(err),
		)
		return nil
	}
	s.log.Debug("fetched districts",
		zap.String("province", province.String()),
		zap.Int("count", len(ds)),
	)
	return ds
}

// Compile-time assertions.
var (
	_ Fetcher               = (*HTTPClient)(nil)
	_ domain.DistrictSource = (*Source)(nil)
)
