package locker

import (
	"context"
	"sync"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockerService struct {
	redisRepository contracts.RedisRepository
	log             *zap.Logger
}

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

func NewLockerService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockerService{
			redisRepository: redisRepository,
			log:             logger,
		}
	})
	return lockerServiceInstance
}

// TryLock acquires a short-lived lock on key. The returned token must be
// passed back to Unlock so a holder never releases a lock it lost.
func (l *lockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	token := uuid.New().String()
	acquired, err := l.redisRepository.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		return false, "", err
	}
	if !acquired {
		return false, "", nil
	}
	return true, token, nil
}

func (l *lockerService) Unlock(ctx context.Context, key, lockValue string) error {
	currentValue, err := l.redisRepository.Get(ctx, key)
	if err != nil {
		return exceptions.ErrRedisUnlock(err)
	}
	// Set marshals values as JSON, so the stored token is quoted.
	if currentValue != `"`+lockValue+`"` && currentValue != lockValue {
		l.log.Warn("lock token mismatch, skipping unlock",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}
	return l.redisRepository.Delete(ctx, key)
}
