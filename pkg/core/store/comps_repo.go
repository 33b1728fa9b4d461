package store

import (
	"context"
	"fmt"

	"cre_underwriting/pkg/core/comps"
)

// CompsRepo retrieves comparable-sale records for a market. Records land in
// this table from the listing-ingest side of the platform; this repo only
// reads them.
type CompsRepo struct{}

// NewCompsRepo creates a new repository instance.
func NewCompsRepo() *CompsRepo {
	return &CompsRepo{}
}

// ListByMarket returns the comps recorded for one market key (e.g. a metro or
// submarket slug). Cap rate and price-per-sqft columns are nullable.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS sale_comps (
//	  id SERIAL PRIMARY KEY,
//	  market TEXT NOT NULL,
//	  address TEXT NOT NULL,
//	  property_type TEXT,
//	  sale_price NUMERIC,
//	  cap_rate_pct NUMERIC,
//	  price_per_sqft NUMERIC
//	);
func (r *CompsRepo) ListByMarket(ctx context.Context, market string) ([]comps.SaleComp, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT address, COALESCE(property_type, ''), sale_price, cap_rate_pct, price_per_sqft
		FROM sale_comps
		WHERE market = $1
		ORDER BY address
	`

	rows, err := pool.Query(ctx, query, market)
	if err != nil {
		return nil, fmt.Errorf("failed to query comps: %w", err)
	}
	defer rows.Close()

	var records []comps.SaleComp
	for rows.Next() {
		var c comps.SaleComp
		if err := rows.Scan(&c.Address, &c.PropertyType, &c.SalePrice, &c.CapRatePct, &c.PricePerSqFt); err != nil {
			return nil, fmt.Errorf("failed to scan comp row: %w", err)
		}
		records = append(records, c)
	}
	return records, rows.Err()
}
