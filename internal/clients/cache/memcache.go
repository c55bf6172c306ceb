package cache

import (
	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

const historyKeyPrefix = "history:"

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func (mc *MemcacheClient) CacheHistory(date string, payload []byte) error {
	logger.Info("cache exchange rate history", zap.String("date", date))
	return mc.client.Set(&memcache.Item{
		Key:   historyKeyPrefix + date,
		Value: payload},
	)
}

func (mc *MemcacheClient) GetHistory(date string) ([]byte, error) {
	logger.Info("get exchange rate history from cache", zap.String("date", date))
	item, err := mc.client.Get(historyKeyPrefix + date)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}
