// backend-go/cmd/seed/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type ctxKey string

const dbKey ctxKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) *sql.DB {
	return c.Context.Value(dbKey).(*sql.DB)
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Seed the database with demo inventory data",
		Flags: []cli.Flag{
			newDBURLFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:   "catalog",
				Usage:  "Seed vendors and products",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: seedCatalog,
			},
			{
				Name:  "transactions",
				Usage: "Seed randomized stock transaction history",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.IntFlag{
						Name:  "days",
						Usage: "Days of history to generate",
						Value: 90,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: seedTransactions,
			},
			{
				Name:  "demo",
				Usage: "Seed catalog and transactions in one go",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.IntFlag{Name: "days", Value: 90},
				},
				Before: initDB,
				After:  closeDB,
				Action: func(c *cli.Context) error {
					if err := seedCatalog(c); err != nil {
						return err
					}
					return seedTransactions(c)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type seedProduct struct {
	name         string
	sku          string
	category     string
	price        string
	costPrice    string
	stock        int
	reorderLevel int
	safetyStock  int
	leadTimeDays int
	vendor       string
}

var seedVendors = []struct {
	name  string
	email string
}{
	{"Acme Supply Co", "orders@acmesupply.example"},
	{"Northline Distribution", "sales@northline.example"},
	{"Pacific Traders", "po@pacifictraders.example"},
}

var seedProducts = []seedProduct{
	{"Cordless Drill 18V", "HW-DRL-018", "Hardware", "89.99", "52.00", 42, 25, 10, 7, "Acme Supply Co"},
	{"Safety Goggles", "HW-GGL-001", "Hardware", "12.50", "4.80", 180, 60, 25, 3, "Acme Supply Co"},
	{"LED Work Light", "EL-LGT-014", "Electrical", "34.00", "18.20", 15, 30, 12, 10, "Northline Distribution"},
	{"Extension Cord 25ft", "EL-CRD-025", "Electrical", "21.75", "9.40", 66, 40, 15, 5, "Northline Distribution"},
	{"Packing Tape 6-pack", "PK-TPE-006", "Packaging", "14.99", "6.10", 240, 100, 40, 4, "Pacific Traders"},
	{"Bubble Wrap Roll", "PK-BWR-050", "Packaging", "27.50", "13.00", 8, 35, 15, 6, "Pacific Traders"},
}

func seedCatalog(c *cli.Context) error {
	db := dbFrom(c)
	ctx := c.Context

	vendorIDs := make(map[string]int64, len(seedVendors))
	for _, v := range seedVendors {
		var id int64
		err := db.QueryRowContext(ctx, `
			INSERT INTO vendors (name, email)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		`, v.name, v.email).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed vendor %s: %w", v.name, err)
		}
		vendorIDs[v.name] = id
	}

	for _, p := range seedProducts {
		_, err := db.ExecContext(ctx, `
			INSERT INTO products (
				name, sku, category, price, cost_price,
				current_stock, reorder_level, safety_stock, lead_time_days,
				vendor_id, active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
			ON CONFLICT (sku) DO NOTHING
		`, p.name, p.sku, p.category, p.price, p.costPrice,
			p.stock, p.reorderLevel, p.safetyStock, p.leadTimeDays,
			vendorIDs[p.vendor])
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.sku, err)
		}
	}

	log.Printf("seeded %d vendors, %d products", len(seedVendors), len(seedProducts))
	return nil
}

// seedTransactions writes a randomized but plausible sales history: a few
// OUT movements most days, an occasional IN restock. Stock on the product
// rows is left untouched; history is what the forecast engine consumes.
func seedTransactions(c *cli.Context) error {
	db := dbFrom(c)
	ctx := c.Context
	days := c.Int("days")

	rows, err := db.QueryContext(ctx, `SELECT id FROM products WHERE active = true`)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var productIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan product id: %w", err)
		}
		productIDs = append(productIDs, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read products: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var count int
	now := time.Now()

	for _, productID := range productIDs {
		for d := days; d > 0; d-- {
			day := now.AddDate(0, 0, -d)

			// Roughly one day in five has no sales at all.
			if rng.Intn(5) == 0 {
				continue
			}

			qty := 1 + rng.Intn(8)
			ts := day.Add(time.Duration(8+rng.Intn(10)) * time.Hour)
			if _, err := db.ExecContext(ctx, `
				INSERT INTO stock_transactions (product_id, quantity, direction, timestamp, notes)
				VALUES ($1, $2, 'OUT', $3, 'seeded sale')
			`, productID, qty, ts); err != nil {
				return fmt.Errorf("failed to seed transaction: %w", err)
			}
			count++

			// Occasional restock delivery.
			if rng.Intn(14) == 0 {
				if _, err := db.ExecContext(ctx, `
					INSERT INTO stock_transactions (product_id, quantity, direction, timestamp, notes)
					VALUES ($1, $2, 'IN', $3, 'seeded delivery')
				`, productID, 20+rng.Intn(40), ts.Add(2*time.Hour)); err != nil {
					return fmt.Errorf("failed to seed delivery: %w", err)
				}
				count++
			}
		}
	}

	log.Printf("seeded %d stock transactions across %d products", count, len(productIDs))
	return nil
}
