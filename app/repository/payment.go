package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-member-payments/app/entity"
)

type PaymentFilter struct {
	UserID string
	Limit  int32
	Offset int32
}

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, user_id, email, payment_type, amount_paise, currency,
			razorpay_order_id, razorpay_payment_id, status, created_at`

// Create inserts a payment record. Records are never updated afterwards.
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (
			user_id, email, payment_type, amount, amount_paise, currency,
			razorpay_order_id, razorpay_payment_id, status, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		payment.UserID,
		payment.Email,
		payment.PaymentType,
		payment.AmountDecimal(),
		payment.AmountPaise,
		payment.Currency,
		payment.RazorpayOrderID,
		payment.RazorpayPaymentID,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = uint64(id)
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint64) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`

	payment := &entity.Payment{}
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), payment); errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = ? ORDER BY id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.UserID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		item := &entity.Payment{}
		if err := scanPayment(rows, item); err != nil {
			return nil, err
		}
		payments = append(payments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func scanPayment(row rowScanner, payment *entity.Payment) error {
	return row.Scan(
		&payment.ID,
		&payment.UserID,
		&payment.Email,
		&payment.PaymentType,
		&payment.AmountPaise,
		&payment.Currency,
		&payment.RazorpayOrderID,
		&payment.RazorpayPaymentID,
		&payment.Status,
		&payment.CreatedAt,
	)
}
