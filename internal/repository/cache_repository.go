package repository

import (
	"center-docs-server/config"
	"center-docs-server/internal/model"
	"center-docs-server/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : guarda en Redis la versión vigente ya resuelta de cada
// documento. Se invalida al crear o decidir versiones.
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetCurrentVersion(ctx context.Context, documentUUID string, version *model.DocumentVersion) error {
	data, err := json.Marshal(version)
	if err != nil {
		return util.LogError("error serializando la versión", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(documentUUID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("error guardando en Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("respuesta inesperada de Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetCurrentVersion(ctx context.Context, documentUUID string) (*model.DocumentVersion, error) {
	val, err := r.client.Client.Get(ctx, r.key(documentUUID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // no está en caché
	} else if err != nil {
		return nil, util.LogError("error obteniendo la versión vigente de Redis", err)
	}

	var version model.DocumentVersion
	if err := json.Unmarshal([]byte(val), &version); err != nil {
		return nil, util.LogError("error deserializando la versión del caché", err)
	}
	return &version, nil
}

func (r *CacheRepository) InvalidateCurrentVersion(ctx context.Context, documentUUID string) error {
	if err := r.client.Client.Del(ctx, r.key(documentUUID)).Err(); err != nil {
		return util.LogError("error invalidando la versión vigente en Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(documentUUID string) string {
	return fmt.Sprintf("version:current:%s", documentUUID)
}
