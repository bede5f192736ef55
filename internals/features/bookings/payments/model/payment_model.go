package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pembayaran internal
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
	PaymentStatusFailed   = "failed"
)

type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentBookingID uuid.UUID `gorm:"column:payment_booking_id;type:uuid;not null;index" json:"payment_booking_id"`

	// Dipakai sebagai OrderID di Midtrans
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex;not null" json:"payment_order_id"`

	PaymentAmountIDR int64  `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentStatus    string `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`

	PaymentSnapToken   *string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`

	// Referensi transaction_id dari gateway
	PaymentGatewayReference *string `gorm:"column:payment_gateway_reference;type:varchar(64)" json:"payment_gateway_reference,omitempty"`

	// Payload notifikasi terakhir, untuk audit
	PaymentLastNotification datatypes.JSON `gorm:"column:payment_last_notification;type:jsonb" json:"payment_last_notification,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
