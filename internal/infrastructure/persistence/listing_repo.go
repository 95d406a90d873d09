package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"auksion_bot/internal/domain"
	"auksion_bot/internal/domain/entity"
	"auksion_bot/pkg/errcodes"
)

type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

// Create вставляет объявление и проставляет присвоенный id.
func (r *ListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.Type != entity.ListingSale && listing.Type != entity.ListingRent {
		return domain.NewError(errcodes.InvalidListingType, "listing type must be sale or rent")
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		schema := fromListing(listing)
		if schema.CreatedAt.IsZero() {
			schema.CreatedAt = time.Now()
		}

		schema.PropertyKind = strings.TrimSpace(schema.PropertyKind)
		schema.Location = strings.TrimSpace(schema.Location)
		schema.Price = strings.TrimSpace(schema.Price)
		schema.Comment = strings.TrimSpace(schema.Comment)
		schema.Region = strings.TrimSpace(schema.Region)

		query := `
			INSERT INTO listings (
				type, property_kind, location, price, comment, media, region, created_at
			) VALUES (
				:type, :property_kind, :location, :price, :comment, :media, :region, :created_at
			)
			RETURNING id`

		rows, err := tx.NamedQuery(query, schema)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to create listing")
		}
		defer func() { _ = rows.Close() }()

		if rows.Next() {
			if err := rows.Scan(&listing.ID); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to scan listing id")
			}
		}

		listing.CreatedAt = schema.CreatedAt

		return nil
	})
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	query := `SELECT * FROM listings WHERE id = $1`

	var schema listingSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.ListingNotFound, "listing not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get listing")
	}

	return schema.toDomain(), nil
}

// Search повторяет семантику подбора: тип и вид имущества обязательны,
// регион опционален, свежие объявления первыми.
func (r *ListingRepository) Search(
	ctx context.Context,
	listingType entity.ListingType,
	propertyKind string,
	region string,
) ([]*entity.Listing, error) {
	propertyKind = strings.TrimSpace(propertyKind)
	region = strings.TrimSpace(region)

	var (
		schemas []listingSchema
		err     error
	)

	if region != "" {
		query := `
			SELECT * FROM listings
			WHERE type = $1 AND property_kind = $2 AND region = $3
			ORDER BY id DESC`
		err = r.db.SelectContext(ctx, &schemas, query, string(listingType), propertyKind, region)
	} else {
		query := `
			SELECT * FROM listings
			WHERE type = $1 AND property_kind = $2
			ORDER BY id DESC`
		err = r.db.SelectContext(ctx, &schemas, query, string(listingType), propertyKind)
	}

	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to search listings")
	}

	listings := make([]*entity.Listing, 0, len(schemas))
	for i := range schemas {
		listings = append(listings, schemas[i].toDomain())
	}

	return listings, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to delete listing")
		}

		rows, _ := res.RowsAffected()
		if rows == 0 {
			return domain.NewError(errcodes.ListingNotFound, "listing not found")
		}
		return nil
	})
}

func (r *ListingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM listings`); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count listings")
	}
	return count, nil
}
