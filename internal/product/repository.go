package product

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	const q = `
		SELECT id, name, description, price, image, category, details, ingredients, created_at
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.Image, &p.Category, &p.Details, &p.Ingredients, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	const q = `
		SELECT id, name, description, price, image, category, details, ingredients, created_at
		FROM products
		WHERE id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Image, &p.Category, &p.Details, &p.Ingredients, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	const q = `
		INSERT INTO products (id, name, description, price, image, category, details, ingredients, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, q,
		p.ID, p.Name, p.Description, p.Price,
		p.Image, p.Category, p.Details, p.Ingredients,
	).Scan(&p.CreatedAt)

	return p, err
}

func (r *repository) Update(ctx context.Context, p Product) error {
	const q = `
		UPDATE products
		SET name = $2, description = $3, price = $4, image = $5,
			category = $6, details = $7, ingredients = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, q,
		p.ID, p.Name, p.Description, p.Price,
		p.Image, p.Category, p.Details, p.Ingredients,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
