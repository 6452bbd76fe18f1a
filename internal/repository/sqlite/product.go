package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/projexi/projexi/pkg/models"
)

func (r *SQLiteRepo) CreateProduct(ctx context.Context, p *models.Product) (string, error) {
	if p == nil {
		return "", fmt.Errorf("product is nil")
	}

	urls := p.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return "", fmt.Errorf("marshal image urls: %w", err)
	}

	id := uuid.NewString()
	ts := now()
	_, err = r.conn.Exec(ctx,
		`INSERT INTO products (id, dealer_id, name, description, price, moq, image_urls, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.DealerID, p.Name, p.Description, p.Price, p.MOQ, string(b), ts)
	if err != nil {
		return "", err
	}

	p.ID = id
	p.Created = ts
	return id, nil
}

func (r *SQLiteRepo) ListProductsByDealer(ctx context.Context, dealerID string, limit int) ([]models.Product, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, dealer_id, name, description, price, moq, image_urls, created FROM products WHERE dealer_id = ? ORDER BY created DESC LIMIT ?`,
		dealerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	var out []models.Product
	for rows.Next() {
		var p models.Product
		var urls string
		if err := rows.Scan(&p.ID, &p.DealerID, &p.Name, &p.Description, &p.Price, &p.MOQ, &urls, &p.Created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(urls), &p.ImageURLs); err != nil {
			return nil, fmt.Errorf("unmarshal image urls for product %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
