package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no product matches the given id.
var ErrNotFound = errors.New("product not found")

// Repository persists catalog products.
type Repository interface {
	// Create inserts the product and assigns the next sequential id.
	Create(ctx context.Context, p Product) (Product, error)
	// Delete removes the product and returns the deleted record.
	Delete(ctx context.Context, id int64) (Product, error)
	All(ctx context.Context) ([]Product, error)
	// Latest returns up to limit newest products in ascending id order.
	Latest(ctx context.Context, limit int) ([]Product, error)
	ByCategory(ctx context.Context, category string, limit int) ([]Product, error)
}

// PostgresRepository stores products in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed catalog repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create assigns the id inside the insert statement so concurrent adds cannot
// both read the same max.
func (r *PostgresRepository) Create(ctx context.Context, p Product) (Product, error) {
	const query = `
        INSERT INTO products (id, name, image, category, new_price, old_price, date, available)
        SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7 FROM products
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Image, p.Category, p.NewPrice, p.OldPrice, p.Date.UTC(), p.Available,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

// Delete removes a product by id and returns the deleted row.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (Product, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM products WHERE id = $1
        RETURNING id, name, image, category, new_price, old_price, date, available`, id)
	return scanProduct(row)
}

// All returns every product in ascending id order.
func (r *PostgresRepository) All(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, image, category, new_price, old_price, date, available
        FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Latest returns the newest products, oldest first within the window.
func (r *PostgresRepository) Latest(ctx context.Context, limit int) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, image, category, new_price, old_price, date, available
        FROM products ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
	return products, nil
}

// ByCategory returns the first products of a category in ascending id order.
func (r *PostgresRepository) ByCategory(ctx context.Context, category string, limit int) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, image, category, new_price, old_price, date, available
        FROM products WHERE category = $1 ORDER BY id LIMIT $2`, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p    Product
		date time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Image, &p.Category, &p.NewPrice, &p.OldPrice, &date, &p.Available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	p.Date = date.UTC()
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]Product, error) {
	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
