package data

import (
	"context"
	"fmt"
	"time"

	"moviecatalog/internal/biz"
	"moviecatalog/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewTransaction,
	NewMovieRepo,
	NewActorRepo,
	NewGenreRepo,
	NewReviewRepo,
	NewRoleRepo,
	NewRankingRepo,
)

const defaultRankingKey = "rank:movies:top"

// Data encapsulates database and leaderboard connections
type Data struct {
	db         *gorm.DB
	rdb        *redis.Client
	rankingKey string
	log        *log.Helper
}

type contextTxKey struct{}

// NewData creates Data instance with database and Redis connections
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)
	if c == nil || c.Database == nil {
		return nil, nil, fmt.Errorf("database configuration is required")
	}

	dialector, err := openDialector(c.Database)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// deletes never cascade and may leave dangling ids behind
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger(c.Database),
	})
	if err != nil {
		l.Errorf("failed to connect to database: %v", err)
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		l.Errorf("failed to get database instance: %v", err)
		return nil, nil, err
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(orDefault(c.Database.MaxIdleConns, 10))
	sqlDB.SetMaxOpenConns(orDefault(c.Database.MaxOpenConns, 100))
	lifetime := c.Database.ConnMaxLifetime.AsDuration()
	if lifetime == 0 {
		lifetime = time.Hour
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	l.Infof("database connected successfully (driver=%s)", c.Database.Driver)

	if c.Database.AutoMigrate {
		if err := migrate(db); err != nil {
			l.Errorf("failed to migrate database: %v", err)
			_ = sqlDB.Close()
			return nil, nil, err
		}
	}

	data := &Data{
		db:         db,
		rankingKey: defaultRankingKey,
		log:        l,
	}

	if c.Redis != nil && c.Redis.Addr != "" {
		if c.Redis.RankingKey != "" {
			data.rankingKey = c.Redis.RankingKey
		}
		data.rdb = openRedis(c.Redis, l)
	}

	cleanup := func() {
		l.Info("closing data resources")
		if data.rdb != nil {
			if err := data.rdb.Close(); err != nil {
				l.Errorf("failed to close redis: %v", err)
			}
		}
		if err := sqlDB.Close(); err != nil {
			l.Errorf("failed to close database: %v", err)
		}
	}

	return data, cleanup, nil
}

// NewTransaction exposes Data as the biz transaction runner.
func NewTransaction(d *Data) biz.Transaction {
	return d
}

// InTx runs fn in a database transaction. Nested calls join the outer one.
func (d *Data) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(contextTxKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, contextTxKey{}, tx))
	})
}

// DB returns the transaction bound to ctx, or the pool.
func (d *Data) DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(contextTxKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

func openDialector(c *conf.Data_Database) (gorm.Dialector, error) {
	switch c.Driver {
	case "postgres", "":
		return postgres.Open(c.Source), nil
	case "mysql":
		return mysql.Open(c.Source), nil
	case "sqlite":
		return sqlite.Open(c.Source), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

func openRedis(c *conf.Data_Redis, l *log.Helper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.Db,
		ReadTimeout:  c.ReadTimeout.AsDuration(),
		WriteTimeout: c.WriteTimeout.AsDuration(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// Redis is optional, continue without the leaderboard
		l.Warnf("failed to connect to redis: %v", err)
		_ = rdb.Close()
		return nil
	}
	l.Info("redis connected successfully")
	return rdb
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Genre{},
		&Movie{},
		&Actor{},
		&Review{},
		&Role{},
	)
}

func gormLogger(c *conf.Data_Database) gormlogger.Interface {
	if c.Driver == "sqlite" {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.Default.LogMode(gormlogger.Warn)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
