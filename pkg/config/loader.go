package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache         sync.Map // cacheKey -> *entry
	defaultDotEnv sync.Once
)

// Option tunes how a struct is parsed.
type Option func(*env.Options)

// WithPrefix prepends prefix to every variable name of the struct.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// Load parses the environment into v. The result for T is cached.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultDotEnv.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	key := cacheKey{typ: reflect.TypeFor[T](), prefix: o.Prefix}
	actual, _ := cache.LoadOrStore(key, &entry{})
	e := actual.(*entry)
	e.once.Do(func() {
		var fresh T
		if err := env.ParseWithOptions(&fresh, o); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = fresh
	})
	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadDotEnv loads the given env files without overriding variables that are
// already set. Call it before the first Load.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrDotEnv, err)
	}
	return nil
}
