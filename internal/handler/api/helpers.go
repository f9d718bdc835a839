package api

import (
	"warung-loyalty/internal/domain/order"
	"warung-loyalty/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mustOrderType converts an already-validated order type string; binding's
// oneof constraint runs before this.
func mustOrderType(s string) order.Type {
	t, err := order.NewType(s)
	if err != nil {
		return order.TypeDineIn
	}
	return t
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "idempotency key must be a UUID")
	}
	return key, nil
}
