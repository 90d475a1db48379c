package middlewares

import (
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewMiddlewares(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}
