package hospital

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/psqlbuilder"
)

// PostgresRepository каталог больниц, читаемый из PostgreSQL
//
// Схема:
//
//	hospitals(id, name, image_url, discount_tag, location, rating, working_hours, address, phone, description, sort_order)
//	hospital_specialties(hospital_id, name, position)
//	hospital_services(hospital_id, name, original_price, discounted_price, position)
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List возвращает все больницы в порядке sort_order
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Hospital, error) {
	return r.load(ctx, nil)
}

// GetByID возвращает больницу по идентификатору
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Hospital, error) {
	hospitals, err := r.load(ctx, squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(hospitals) == 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrHospitalNotFound, id)
	}

	return &hospitals[0], nil
}

// load читает больницы и подгружает их специализации и услуги двумя дополнительными запросами
func (r *PostgresRepository) load(ctx context.Context, where squirrel.Sqlizer) ([]domain.Hospital, error) {
	qb := psqlbuilder.Select(
		"id",
		"name",
		"image_url",
		"discount_tag",
		"location",
		"rating",
		"working_hours",
		"address",
		"phone",
		"description",
	).
		From("hospitals").
		OrderBy("sort_order", "id")

	if where != nil {
		qb = qb.Where(where)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: load - build hospitals query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: load - query hospitals: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hospitals := make([]domain.Hospital, 0)
	index := make(map[string]int)
	ids := make([]string, 0)

	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.ImageURL,
			&h.DiscountTag,
			&h.Location,
			&h.Rating,
			&h.WorkingHours,
			&h.Address,
			&h.Phone,
			&h.Description,
		); err != nil {
			return nil, fmt.Errorf("%w: load - scan hospital: %v", ErrScanRow, err)
		}

		index[h.ID] = len(hospitals)
		ids = append(ids, h.ID)
		hospitals = append(hospitals, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load - iterate hospitals: %v", ErrExecQuery, err)
	}

	if len(hospitals) == 0 {
		return hospitals, nil
	}

	if err := r.loadSpecialties(ctx, ids, hospitals, index); err != nil {
		return nil, err
	}

	if err := r.loadServices(ctx, ids, hospitals, index); err != nil {
		return nil, err
	}

	return hospitals, nil
}

func (r *PostgresRepository) loadSpecialties(ctx context.Context, ids []string, hospitals []domain.Hospital, index map[string]int) error {
	query, args, err := psqlbuilder.Select("hospital_id", "name").
		From("hospital_specialties").
		Where(squirrel.Eq{"hospital_id": ids}).
		OrderBy("hospital_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSpecialties - build query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSpecialties - query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var hospitalID, name string
		if err := rows.Scan(&hospitalID, &name); err != nil {
			return fmt.Errorf("%w: loadSpecialties - scan: %v", ErrScanRow, err)
		}

		if i, ok := index[hospitalID]; ok {
			hospitals[i].Specialties = append(hospitals[i].Specialties, name)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadSpecialties - iterate: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *PostgresRepository) loadServices(ctx context.Context, ids []string, hospitals []domain.Hospital, index map[string]int) error {
	query, args, err := psqlbuilder.Select("hospital_id", "name", "original_price", "discounted_price").
		From("hospital_services").
		Where(squirrel.Eq{"hospital_id": ids}).
		OrderBy("hospital_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServices - build query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServices - query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			hospitalID string
			service    domain.ServiceOffering
		)
		if err := rows.Scan(&hospitalID, &service.Name, &service.OriginalPrice, &service.DiscountedPrice); err != nil {
			return fmt.Errorf("%w: loadServices - scan: %v", ErrScanRow, err)
		}

		if i, ok := index[hospitalID]; ok {
			hospitals[i].Services = append(hospitals[i].Services, service)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServices - iterate: %v", ErrExecQuery, err)
	}

	return nil
}
