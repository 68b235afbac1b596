package auth

import (
	"time"

	"github.com/jmorrow/taskdeck/internal/config"
)

// NewJWTServiceWithTimeFunc creates a JWT service whose notion of "now"
// comes from the given function. Used by tests to exercise expiry
// boundaries deterministically.
func NewJWTServiceWithTimeFunc(
	cfg config.AuthConfig,
	timeFunc func() time.Time,
) (JWTService, error) {
	svc, err := NewJWTService(cfg)
	if err != nil {
		return nil, err
	}

	impl := svc.(*hmacJWTService)
	impl.timeFunc = timeFunc
	return impl, nil
}
