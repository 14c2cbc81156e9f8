package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo customers and billboards. Rows are keyed by name and
// code, so running it twice leaves the data unchanged.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	customers := []struct{ name, email string }{
		{"Northwind Traders", "media@northwind.test"},
		{"Contoso Foods", "ads@contoso.test"},
		{"Fabrikam Motors", "brand@fabrikam.test"},
	}
	for _, c := range customers {
		_, err := db.Exec(ctx, `
INSERT INTO customers (id, name, email)
SELECT $1, $2, $3
WHERE NOT EXISTS (SELECT 1 FROM customers WHERE name = $2)`,
			uuid.New(), c.name, c.email)
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", c.name, err)
		}
	}

	locations := []string{"Ring Road North", "Central Station", "Airport Link", "Harbour Bridge", "Old Town Square", "Stadium Gate"}
	for i := 1; i <= 12; i++ {
		code := fmt.Sprintf("BB-%03d", i)
		kind, slots := "static", 0
		rate := decimal.NewFromInt(int64(400 + 100*(i%5)))
		if i%3 == 0 {
			kind, slots = "digital", 4*(i/3)
			rate = decimal.NewFromInt(150)
		}
		_, err := db.Exec(ctx, `
INSERT INTO billboards (id, code, name, location, type, slot_count, rate_per_day, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,'active') ON CONFLICT (code) DO NOTHING`,
			uuid.New(), code, fmt.Sprintf("%s %s", locations[i%len(locations)], code), locations[i%len(locations)], kind, slots, rate)
		if err != nil {
			return fmt.Errorf("seed billboard %s: %w", code, err)
		}
	}
	return nil
}
