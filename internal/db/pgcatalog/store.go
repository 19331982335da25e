// Package pgcatalog serves the product catalog from a PostgreSQL table,
// translating specifications into WHERE clauses so filtering runs on the
// server instead of in memory.
package pgcatalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lazyshelf/lazyshelf/internal/catalog"
	"github.com/lazyshelf/lazyshelf/internal/db/connection"
	"github.com/lazyshelf/lazyshelf/internal/filter"
	"github.com/lazyshelf/lazyshelf/internal/spec"
)

// Store reads products from a PostgreSQL table.
// Expected schema: id text, name text, category text, price numeric,
// stock integer, tags text[], attributes jsonb.
type Store struct {
	pool    *connection.Pool
	table   string
	builder *filter.Builder
}

// NewStore creates a store backed by the given pool and table name
func NewStore(pool *connection.Pool, table string) *Store {
	if table == "" {
		table = "products"
	}
	return &Store{
		pool:    pool,
		table:   table,
		builder: filter.NewBuilder(),
	}
}

// Table returns the table this store reads from
func (s *Store) Table() string {
	return s.table
}

// List returns the products satisfying the specification, in id order.
// A nil specification returns the whole table.
func (s *Store) List(ctx context.Context, filterSpec spec.Specification[catalog.Product]) ([]catalog.Product, error) {
	where, args, err := s.builder.BuildWhere(filterSpec)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf(
		"SELECT id, name, category, price, stock, tags, attributes FROM %s %s ORDER BY id",
		pgx.Identifier{s.table}.Sanitize(),
		where,
	)

	rows, err := s.pool.GetPool().Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

// Count returns how many products satisfy the specification without
// transferring the rows. A nil specification counts the whole table.
func (s *Store) Count(ctx context.Context, filterSpec spec.Specification[catalog.Product]) (int, error) {
	where, args, err := s.builder.BuildWhere(filterSpec)
	if err != nil {
		return 0, err
	}

	sql := fmt.Sprintf(
		"SELECT count(*) FROM %s %s",
		pgx.Identifier{s.table}.Sanitize(),
		where,
	)

	var count int
	if err := s.pool.GetPool().QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// scanProduct reads one row into a Product, decoding the jsonb attributes
func scanProduct(rows pgx.Rows) (catalog.Product, error) {
	var (
		product  catalog.Product
		attrsRaw []byte
	)

	err := rows.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Stock,
		&product.Tags,
		&attrsRaw,
	)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("failed to scan product row: %w", err)
	}

	if len(attrsRaw) > 0 {
		if err := json.Unmarshal(attrsRaw, &product.Attributes); err != nil {
			return catalog.Product{}, fmt.Errorf("failed to decode product attributes: %w", err)
		}
	}

	return product, nil
}
