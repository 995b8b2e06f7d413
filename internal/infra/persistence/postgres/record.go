package postgres

import (
	"context"

	"campnav/internal/domain/entity"
	domainerrors "campnav/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// newRecordID returns a time-ordered UUIDv7 so that ordering by id follows insertion order.
func newRecordID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to generate record ID")
	}

	return id, nil
}

// findByID loads a single row into dest from the primary, so a row is visible
// immediately after the write that created it even when replicas are configured.
func findByID(ctx context.Context, db *gorm.DB, dest any, id uuid.UUID, notFound error) error {
	if err := db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}

		return errors.Wrap(err, "failed to find record by ID")
	}

	return nil
}

// createRecord inserts a row and maps constraint failures.
func createRecord(ctx context.Context, db *gorm.DB, value any, details string) error {
	if err := db.WithContext(ctx).Create(value).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required field")
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}

	return nil
}

// updateColumns patches the given columns of one row. An empty patch only
// checks that the row exists.
func updateColumns(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, columns map[string]any, notFound error) error {
	if len(columns) == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check record existence")
		}
		if count == 0 {
			return notFound
		}

		return nil
	}

	result := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update record")
	}

	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

// deleteByID removes a row. Missing rows are not an error.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) error {
	if err := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(model).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete record")
	}

	return nil
}

// setColumn records a patch field when it was supplied.
func setColumn[T any](columns map[string]any, column string, value *T) {
	if value != nil {
		columns[column] = *value
	}
}

// setNullableColumn records a nullable patch field; an explicit null becomes SQL NULL.
func setNullableColumn[T any](columns map[string]any, column string, value entity.Nullable[T]) {
	if !value.Set {
		return
	}

	if value.Value == nil {
		columns[column] = nil

		return
	}
	columns[column] = *value.Value
}

// mapSlice converts a slice of models into domain entities.
func mapSlice[M any, E any](models []*M, convert func(*M) *E) []*E {
	result := make([]*E, 0, len(models))
	for _, m := range models {
		result = append(result, convert(m))
	}

	return result
}
