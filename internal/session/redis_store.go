package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const redisKeyPrefix = "controle-exames:session:"

// RedisStore keeps session values in Redis. The cookie only carries the
// signed session id.
type RedisStore struct {
	client  *redis.Client
	codecs  []securecookie.Codec
	options *sessions.Options
	ttl     time.Duration
	encoder securecookie.GobEncoder
}

var _ sessions.Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, opts Options) *RedisStore {
	options := cookieOptions(opts)
	codecs := securecookie.CodecsFromPairs([]byte(opts.Secret))
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(options.MaxAge)
		}
	}

	return &RedisStore{
		client:  client,
		codecs:  codecs,
		options: options,
		ttl:     opts.MaxAge,
	}
}

// Ping checks the connection at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	opts := *s.options
	sess.Options = &opts
	sess.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &sess.ID, s.codecs...); err != nil {
		return sess, err
	}

	found, err := s.load(r.Context(), sess)
	if err != nil {
		return sess, err
	}
	sess.IsNew = !found
	return sess, nil
}

func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	ctx := r.Context()

	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.client.Del(ctx, redisKeyPrefix+sess.ID).Err(); err != nil {
				return fmt.Errorf("session: delete: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	payload, err := s.encoder.Serialize(sess.Values)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+sess.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: store: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("session: sign id: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

func (s *RedisStore) load(ctx context.Context, sess *sessions.Session) (bool, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+sess.ID).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session: load: %w", err)
	}
	if err := s.encoder.Deserialize(payload, &sess.Values); err != nil {
		return false, fmt.Errorf("session: decode: %w", err)
	}
	return true, nil
}
