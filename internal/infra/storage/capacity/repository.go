package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/petservice-marketplace/PSM-BookingService/internal/domain"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/dbmetrics"
	"github.com/petservice-marketplace/PSM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий счетчиков занятых мест по дням
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория вместимости
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForDays получает занятые места грумера для перечисленных дней
// Возвращает map день -> занято; дни без записей в map отсутствуют (занято 0).
//
// Внутри транзакции строки блокируются через FOR UPDATE: проверка и
// инкремент вместимости выполняются в сериализуемой транзакции, поэтому
// два параллельных резервирования одного дня не могут оба пройти проверку
// на устаревших данных
func (r *Repository) GetForDays(ctx context.Context, groomerID string, days []time.Time) (map[time.Time]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(days) == 0 {
		return map[time.Time]int{}, nil
	}

	selectBuilder := psqlbuilder.Select("day", "booked_units").
		From("capacity_records").
		Where(squirrel.Eq{"groomer_id": groomerID}).
		Where(squirrel.Eq{"day": days})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make(map[time.Time]int, len(days))
	for rows.Next() {
		var day time.Time
		var units int
		if err := rows.Scan(&day, &units); err != nil {
			return nil, fmt.Errorf("%w: GetForDays - scan row: %v", ErrScanRow, err)
		}
		booked[domain.DayOf(day)] = units
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForDays - rows error: %v", ErrScanRow, err)
	}

	return booked, nil
}

// AddUnits увеличивает счетчик занятых мест для каждого дня
// Записи для дней без счетчика создаются лениво (upsert)
func (r *Repository) AddUnits(ctx context.Context, groomerID string, days []time.Time, units int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(days) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("capacity_records").
		Columns("groomer_id", "day", "booked_units")

	for _, day := range days {
		insertBuilder = insertBuilder.Values(groomerID, day, units)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (groomer_id, day) DO UPDATE SET booked_units = capacity_records.booked_units + EXCLUDED.booked_units").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddUnits - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddUnits - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetWindow получает счетчики занятых мест грумера начиная с from (включительно)
// на limit календарных дней вперед, по возрастанию даты
func (r *Repository) GetWindow(ctx context.Context, groomerID string, from time.Time, limit int) ([]domain.CapacityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fromDay := domain.DayOf(from)
	toDay := fromDay.AddDate(0, 0, limit)

	query, args, err := psqlbuilder.Select("day", "booked_units").
		From("capacity_records").
		Where(squirrel.Eq{"groomer_id": groomerID}).
		Where(squirrel.GtOrEq{"day": fromDay}).
		Where(squirrel.Lt{"day": toDay}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.CapacityRecord, 0)
	for rows.Next() {
		record := domain.CapacityRecord{GroomerID: groomerID}
		if err := rows.Scan(&record.Day, &record.BookedUnits); err != nil {
			return nil, fmt.Errorf("%w: GetWindow - scan row: %v", ErrScanRow, err)
		}
		record.Day = domain.DayOf(record.Day)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWindow - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
