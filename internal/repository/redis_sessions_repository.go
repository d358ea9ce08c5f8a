package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/vital/internal/error_values"
	"github.com/limbo/vital/pkg/cleanup"
	"github.com/limbo/vital/pkg/entity"
)

const sessionKeyPrefix = "vital:session:"

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// RedisSessionsRepository keeps sessions as JSON values whose redis TTL
// matches the session expiry, so expired sessions disappear on their own.
type RedisSessionsRepository struct {
	client redis.Cmdable
}

func NewRedisSessionsRepo(cfg RedisCfg) *RedisSessionsRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error while pinging redis for sessionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisSessionsRepository{client: client}
}

func NewRedisSessionsRepoWithClient(client redis.Cmdable) *RedisSessionsRepository {
	return &RedisSessionsRepository{client: client}
}

type redisSession struct {
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (rr *RedisSessionsRepository) Create(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is already expired")
	}
	data, err := sonic.Marshal(redisSession{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return errors.New("marshalling session error: " + err.Error())
	}
	if err = rr.client.Set(ctx, sessionKeyPrefix+session.ID.String(), data, ttl).Err(); err != nil {
		return errors.New("storing session in redis error: " + err.Error())
	}
	return nil
}

func (rr *RedisSessionsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	data, err := rr.client.Get(ctx, sessionKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session from redis error: " + err.Error())
	}
	var stored redisSession
	if err = sonic.Unmarshal(data, &stored); err != nil {
		return nil, errors.New("unmarshalling session error: " + err.Error())
	}
	if !stored.ExpiresAt.After(time.Now()) {
		return nil, errorvalues.ErrSessionNotFound
	}
	return &entity.Session{
		ID:        id,
		UserID:    stored.UserID,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

func (rr *RedisSessionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := rr.client.Del(ctx, sessionKeyPrefix+id.String()).Err(); err != nil {
		return errors.New("deleting session from redis error: " + err.Error())
	}
	return nil
}

// DeleteExpired is a no-op, redis evicts expired keys itself.
func (rr *RedisSessionsRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}
