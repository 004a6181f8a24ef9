package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/config"
	"github.com/oksasatya/growthpoints/internal/application"
	"github.com/oksasatya/growthpoints/internal/domain/repository"
	"github.com/oksasatya/growthpoints/internal/infrastructure/identity"
	"github.com/oksasatya/growthpoints/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	uow         repository.UnitOfWork

	verifier  identity.Verifier
	completer application.Completer
	rabbitPub *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return cfg
}

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}

func SetPGPool(p *pgxpool.Pool)             { pgPool = p }
func GetPGPool() *pgxpool.Pool              { return pgPool }
func SetRedis(r *redis.Client)              { redisClient = r }
func GetRedis() *redis.Client               { return redisClient }
func SetUnitOfWork(u repository.UnitOfWork) { uow = u }
func GetUnitOfWork() repository.UnitOfWork  { return uow }

func SetVerifier(v identity.Verifier) { verifier = v }

// GetVerifier never returns nil; without a backend every call reports
// identity.ErrUnconfigured.
func GetVerifier() identity.Verifier {
	if verifier == nil {
		return identity.Unconfigured{}
	}
	return verifier
}

// SetCompleter stores the completion client; nil means no API key.
func SetCompleter(c application.Completer) { completer = c }
func GetCompleter() application.Completer  { return completer }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

// GetPublisher returns the reward publisher as an interface, nil when
// RabbitMQ is not connected.
func GetPublisher() application.Publisher {
	if rabbitPub == nil {
		return nil
	}
	return rabbitPub
}
