package stays

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/pkg/psqlbuilder"
)

// Repository persists the ledger of completed stays.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a stays repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record inserts one completed stay. Guests and the price detail are stored
// as JSONB so the ledger keeps the exact shape the backend reported.
func (r *Repository) Record(ctx context.Context, stay *domain.Stay) (*domain.Stay, error) {
	guests, err := json.Marshal(stay.Guests)
	if err != nil {
		return nil, fmt.Errorf("%w: Record - encode guests: %v", ErrBuildQuery, err)
	}

	var priceDetail []byte
	if stay.PriceDetail != nil {
		priceDetail, err = json.Marshal(stay.PriceDetail)
		if err != nil {
			return nil, fmt.Errorf("%w: Record - encode price detail: %v", ErrBuildQuery, err)
		}
	}

	var offers []byte
	if len(stay.Offers) > 0 {
		offers, err = json.Marshal(stay.Offers)
		if err != nil {
			return nil, fmt.Errorf("%w: Record - encode offers: %v", ErrBuildQuery, err)
		}
	}

	query, args, err := psqlbuilder.Insert("stays").
		Columns(
			"confirmation_code",
			"hotel",
			"room_type",
			"guests",
			"checkin",
			"checkout",
			"total",
			"price_detail",
			"offers",
		).
		Values(
			stay.ConfirmationCode,
			stay.Hotel,
			stay.RoomType,
			guests,
			stay.Checkin,
			stay.Checkout,
			stay.Total,
			priceDetail,
			offers,
		).
		Suffix("RETURNING id, recorded_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&stay.ID, &stay.RecordedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return stay, nil
}

// List returns the recorded stays, most recent checkout first.
func (r *Repository) List(ctx context.Context) ([]*domain.Stay, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"confirmation_code",
		"hotel",
		"room_type",
		"guests",
		"checkin",
		"checkout",
		"total",
		"price_detail",
		"offers",
		"recorded_at",
	).
		From("stays").
		OrderBy("checkout DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var out []*domain.Stay
	for rows.Next() {
		stay, err := scanStay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrExecQuery, err)
	}

	return out, nil
}

func scanStay(rows *sql.Rows) (*domain.Stay, error) {
	var (
		stay        domain.Stay
		guests      []byte
		priceDetail []byte
		offers      []byte
	)

	err := rows.Scan(
		&stay.ID,
		&stay.ConfirmationCode,
		&stay.Hotel,
		&stay.RoomType,
		&guests,
		&stay.Checkin,
		&stay.Checkout,
		&stay.Total,
		&priceDetail,
		&offers,
		&stay.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	if len(guests) > 0 {
		if err := json.Unmarshal(guests, &stay.Guests); err != nil {
			return nil, fmt.Errorf("%w: decode guests: %v", ErrScanRow, err)
		}
	}
	if len(priceDetail) > 0 {
		if err := json.Unmarshal(priceDetail, &stay.PriceDetail); err != nil {
			return nil, fmt.Errorf("%w: decode price detail: %v", ErrScanRow, err)
		}
	}
	if len(offers) > 0 {
		if err := json.Unmarshal(offers, &stay.Offers); err != nil {
			return nil, fmt.Errorf("%w: decode offers: %v", ErrScanRow, err)
		}
	}

	return &stay, nil
}
