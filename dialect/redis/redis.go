// Package redis pushes generated documents into Redis lists, one JSON
// encoded instance per list element.
//
// Each entity of a document lands in the list prefix+entity, and the entity
// names are added to the set prefix+"entities":
//
//	sink, err := redis.New(redis.Options{URL: "redis://localhost:6379", Prefix: "jgd:"})
//	if err != nil {
//	    return err
//	}
//	defer sink.Close()
//	res, err := sink.Push(ctx, doc, "")
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/syssam/jgd"
)

// EntitiesKey is the set, under the prefix, holding pushed entity names.
const EntitiesKey = "entities"

// Options configures the Redis connection.
type Options struct {
	// URL is the Redis connection string, e.g. "redis://localhost:6379/0".
	// A bare host:port is accepted as well.
	URL string
	// Prefix is prepended to every key.
	Prefix string
	// Replace deletes existing lists before pushing.
	Replace bool
	// ConnectTimeout is the maximum time to wait for connection establishment.
	ConnectTimeout time.Duration
	// Logger receives push diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Sink writes documents to Redis lists.
type Sink struct {
	client  *redis.Client
	prefix  string
	replace bool
	log     *slog.Logger
}

// New connects to Redis and returns a Sink.
func New(opts Options) (*Sink, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if !strings.Contains(opts.URL, "://") {
		opts.URL = "redis://" + opts.URL
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: parsing URL: %w", err)
	}
	redisOpts.DialTimeout = opts.ConnectTimeout
	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connecting to %s: %w", redisOpts.Addr, err)
	}
	return NewSink(client, opts), nil
}

// NewSink returns a Sink writing through client. The URL and
// ConnectTimeout options are ignored.
func NewSink(client *redis.Client, opts Options) *Sink {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Sink{client: client, prefix: opts.Prefix, replace: opts.Replace, log: log}
}

// Key returns the list key of entity.
func (s *Sink) Key(entity string) string {
	return s.prefix + entity
}

// PushResult reports the elements pushed per list, in push order.
type PushResult struct {
	Keys   []string
	Counts map[string]int
}

// Push writes doc. A document generated in entities mode is a *jgd.Object
// keyed by entity name; pass root = "". A root document is pushed to the
// single list named root. All lists are written in one MULTI/EXEC
// transaction.
func (s *Sink) Push(ctx context.Context, doc any, root string) (*PushResult, error) {
	lists, err := s.lists(doc, root)
	if err != nil {
		return nil, err
	}
	res := &PushResult{Counts: make(map[string]int, len(lists))}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, l := range lists {
			key := s.Key(l.entity)
			if s.replace {
				pipe.Del(ctx, key)
			}
			if len(l.values) > 0 {
				pipe.RPush(ctx, key, l.values...)
			}
			pipe.SAdd(ctx, s.Key(EntitiesKey), l.entity)
			res.Keys = append(res.Keys, key)
			res.Counts[key] = len(l.values)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis: push: %w", err)
	}
	s.log.InfoContext(ctx, "pushed document", "lists", len(res.Keys), "prefix", s.prefix)
	return res, nil
}

// Entries returns the JSON elements stored for entity.
func (s *Sink) Entries(ctx context.Context, entity string) ([]json.RawMessage, error) {
	vals, err := s.client.LRange(ctx, s.Key(entity), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: reading %s: %w", s.Key(entity), err)
	}
	out := make([]json.RawMessage, len(vals))
	for i, v := range vals {
		out[i] = json.RawMessage(v)
	}
	return out, nil
}

// Entities returns the entity names pushed under the prefix.
func (s *Sink) Entities(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.Key(EntitiesKey)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: reading entities: %w", err)
	}
	return names, nil
}

// Close closes the Redis connection.
func (s *Sink) Close() error {
	return s.client.Close()
}

type list struct {
	entity string
	values []any
}

func (s *Sink) lists(doc any, root string) ([]list, error) {
	if root != "" {
		vals, err := encode(root, doc)
		if err != nil {
			return nil, err
		}
		return []list{{entity: root, values: vals}}, nil
	}
	obj, ok := doc.(*jgd.Object)
	if !ok {
		return nil, fmt.Errorf("redis: expected an object keyed by entity, got %T", doc)
	}
	lists := make([]list, 0, obj.Len())
	for _, name := range obj.Keys() {
		v, _ := obj.Get(name)
		vals, err := encode(name, v)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list{entity: name, values: vals})
	}
	return lists, nil
}

// encode returns the list elements of an entity value: one per instance of a
// counted entity, or the single instance.
func encode(entity string, v any) ([]any, error) {
	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}
	vals := make([]any, len(items))
	for i, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("redis: encoding %s[%d]: %w", entity, i+1, err)
		}
		vals[i] = string(b)
	}
	return vals, nil
}
