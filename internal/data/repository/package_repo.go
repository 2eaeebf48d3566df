package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PackageFilter narrows the catalog listing. Zero values mean "no filter".
type PackageFilter struct {
	Type         entity.PackageType
	FeaturedOnly bool
	Limit        int
	Offset       int
}

type PackageRepository interface {
	FindAll(ctx context.Context, filter PackageFilter) ([]*entity.Package, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Package, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `
	id, title, description, type, duration, price, discounted_price,
	featured, rating, review_count, images, location, includes,
	difficulty, group_size, availability, is_active, created_at, updated_at
`

// FindAll lists active packages, featured first then best rated
func (pr *packageRepository) FindAll(ctx context.Context, filter PackageFilter) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active = TRUE`
	args := []any{}
	argPos := 1

	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, filter.Type)
		argPos++
	}

	if filter.FeaturedOnly {
		query += " AND featured = TRUE"
	}

	query += fmt.Sprintf(" ORDER BY featured DESC, rating DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	return pr.scanMany(ctx, query, args...)
}

// FindFeatured returns the top rated featured packages for the landing page
func (pr *packageRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE is_active = TRUE AND featured = TRUE
		ORDER BY rating DESC, created_at DESC
		LIMIT $1
	`
	return pr.scanMany(ctx, query, limit)
}

func (pr *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1 AND is_active = TRUE`

	row := pr.db.QueryRow(ctx, query, id)
	pkg, err := pr.scanRow(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package %s: %w", id.String(), err)
	}

	return pkg, nil
}

func (pr *packageRepository) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Package, error) {
	rows, err := pr.db.Query(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to query packages", zap.Error(err))
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		pkg, err := pr.scanRow(rows)
		if err != nil {
			pr.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}

	return packages, nil
}

func (pr *packageRepository) scanRow(row pgx.Row) (*entity.Package, error) {
	var pkg entity.Package
	var images, includes, groupSize, availability []byte

	err := row.Scan(
		&pkg.ID,
		&pkg.Title,
		&pkg.Description,
		&pkg.Type,
		&pkg.DurationDays,
		&pkg.Price,
		&pkg.DiscountedPrice,
		&pkg.Featured,
		&pkg.Rating,
		&pkg.ReviewCount,
		&images,
		&pkg.Location,
		&includes,
		&pkg.Difficulty,
		&groupSize,
		&availability,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	pkg.Images = unmarshalStringList(images)
	pkg.Includes = unmarshalStringList(includes)
	if err := unmarshalBlob(groupSize, &pkg.GroupSize); err != nil {
		return nil, err
	}
	if err := unmarshalBlob(availability, &pkg.Availability); err != nil {
		return nil, err
	}

	return &pkg, nil
}
