package shared

import (
	"context"
	"time"

	"warung-loyalty/internal/domain/loyalty"
	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/domain/user"
	"warung-loyalty/internal/domain/voucher"
	"warung-loyalty/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failure; settlement runs here under the account row lock.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: direct access to command reads for validation outside transactions
	Reads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Loyalty() LoyaltyRepository
	Vouchers() VoucherRepository
	VoucherUsages() VoucherUsageRepository
	Settings() SettingsRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
}

// CommandReads are the snapshot reads the command side validates against.
// Inside Within they observe the transaction; via UnitOfWork.Reads they run
// against the pool.
type CommandReads interface {
	VoucherByCode(ctx context.Context, code string) (*VoucherSnapshot, error)
	VoucherUsage(ctx context.Context, voucherID, userID uuid.UUID) (*VoucherUsageCount, error)
	Tiers(ctx context.Context) ([]TierSnapshot, error)
	Settings(ctx context.Context) (*SettingsSnapshot, error)
	LoyaltyAccount(ctx context.Context, userID uuid.UUID) (*LoyaltyAccountSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
}

type LoyaltyRepository interface {
	CreateAccount(ctx context.Context, userID uuid.UUID) error
	// GetForUpdate takes the account row lock that serializes concurrent
	// settlements for the same user.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*LoyaltyAccountSnapshot, error)
	Save(ctx context.Context, account loyalty.Account) error
}

type VoucherRepository interface {
	Create(ctx context.Context, v *voucher.Voucher) (uuid.UUID, error)
}

type VoucherUsageRepository interface {
	Record(ctx context.Context, voucherID, userID, orderID uuid.UUID, usedAt time.Time) error
}

type SettingsRepository interface {
	Save(ctx context.Context, s SettingsSnapshot) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether this request claimed the key; a false return
	// means another request holds it and the caller must inspect the row.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, responseHash string, resultOrderID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
}

type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
