package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/helpers"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/logger"
)

// StoredSchedule is one user's persisted document: the course records that
// produce their schedule plus optional travel settings. The rendered week
// is never stored; it is rebuilt from the records on every load.
type StoredSchedule struct {
	UserID     string
	Courses    []models.CourseRecord
	DormCoords *models.Coordinates
}

// ScheduleRepository handles database operations for user schedules
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func dormCoordValues(coords *models.Coordinates) (sql.NullFloat64, sql.NullFloat64) {
	if coords == nil {
		return helpers.GetNullFloat64(nil), helpers.GetNullFloat64(nil)
	}
	return helpers.GetNullFloat64(&coords.Latitude), helpers.GetNullFloat64(&coords.Longitude)
}

// Save upserts the user's document wholesale. Called after every successful
// generation so a reload always reconstitutes the same schedule.
func (r *ScheduleRepository) Save(ctx context.Context, doc *StoredSchedule) error {
	coursesJSON, err := json.Marshal(doc.Courses)
	if err != nil {
		return fmt.Errorf("failed to encode course records: %w", err)
	}

	lat, lng := dormCoordValues(doc.DormCoords)

	sql, args, err := r.sb.Insert("user_schedules").
		Columns("user_id", "courses", "dorm_latitude", "dorm_longitude", "updated_at").
		Values(doc.UserID, coursesJSON, lat, lng, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			courses = EXCLUDED.courses,
			dorm_latitude = EXCLUDED.dorm_latitude,
			dorm_longitude = EXCLUDED.dorm_longitude,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save schedule SQL")
		return fmt.Errorf("failed to build save schedule query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", doc.UserID).Msg("Error executing save schedule query")
		return fmt.Errorf("error saving schedule: %w", err)
	}
	return nil
}

// Load retrieves the user's document. A user with no document yet returns
// (nil, nil); first use is not an error.
func (r *ScheduleRepository) Load(ctx context.Context, userID string) (*StoredSchedule, error) {
	sql, args, err := r.sb.Select("courses", "dorm_latitude", "dorm_longitude").
		From("user_schedules").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building load schedule SQL")
		return nil, fmt.Errorf("failed to build load schedule query: %w", err)
	}

	var coursesJSON []byte
	var lat, lng *float64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&coursesJSON, &lat, &lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	doc := &StoredSchedule{UserID: userID}
	if err := json.Unmarshal(coursesJSON, &doc.Courses); err != nil {
		return nil, fmt.Errorf("failed to decode course records: %w", err)
	}
	if lat != nil && lng != nil {
		doc.DormCoords = &models.Coordinates{Latitude: *lat, Longitude: *lng}
	}
	return doc, nil
}

// SaveDormCoords updates only the travel settings, creating the document if
// the user has never generated a schedule.
func (r *ScheduleRepository) SaveDormCoords(ctx context.Context, userID string, coords *models.Coordinates) error {
	lat, lng := dormCoordValues(coords)

	sql, args, err := r.sb.Insert("user_schedules").
		Columns("user_id", "courses", "dorm_latitude", "dorm_longitude", "updated_at").
		Values(userID, []byte("[]"), lat, lng, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			dorm_latitude = EXCLUDED.dorm_latitude,
			dorm_longitude = EXCLUDED.dorm_longitude,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save dorm coords SQL")
		return fmt.Errorf("failed to build save dorm coords query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing save dorm coords query")
		return fmt.Errorf("error saving dorm coordinates: %w", err)
	}
	return nil
}

// Delete removes a user's document.
func (r *ScheduleRepository) Delete(ctx context.Context, userID string) error {
	sql, args, err := r.sb.Delete("user_schedules").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing delete schedule query")
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	return nil
}
