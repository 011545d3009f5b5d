package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// ValkeyCache is a RecordCache backed by Valkey so multiple analyzer
// instances can share results. Records are stored as JSON with a server
// side expiry.
type ValkeyCache struct {
	client valkey.Client
	ttl    time.Duration
}

// NewValkeyCache connects to Valkey using VALKEY_INIT_ADDRESS,
// VALKEY_PASSWORD and VALKEY_TLS from the environment and verifies the
// connection with a ping.
func NewValkeyCache(ttl time.Duration) (*ValkeyCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("create valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping valkey: %w", err)
	}

	slog.Info("[ValkeyCache] Connected to valkey")

	return &ValkeyCache{client: client, ttl: ttl}, nil
}

// Close releases the underlying connection.
func (v *ValkeyCache) Close() {
	v.client.Close()
}

func (v *ValkeyCache) Get(ctx context.Context, symbol string, days int) (models.SentimentRecord, bool, error) {
	res := v.client.Do(ctx, v.client.B().Get().Key(Key(symbol, days)).Build())
	if err := res.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return models.SentimentRecord{}, false, nil
		}
		return models.SentimentRecord{}, false, fmt.Errorf("valkey get: %w", err)
	}

	raw, err := res.AsBytes()
	if err != nil {
		return models.SentimentRecord{}, false, fmt.Errorf("valkey get bytes: %w", err)
	}

	var record models.SentimentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		slog.Warn("[ValkeyCache] Dropping corrupt cache entry",
			slog.String("key", Key(symbol, days)),
			slog.String("error", err.Error()))
		return models.SentimentRecord{}, false, nil
	}

	return record, true, nil
}

func (v *ValkeyCache) Set(ctx context.Context, symbol string, days int, record models.SentimentRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	cmd := v.client.B().Set().Key(Key(symbol, days)).Value(string(raw)).
		Ex(v.ttl).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("valkey set: %w", err)
	}
	return nil
}
