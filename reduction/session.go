package reduction

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/npillmayer/formulae/expr"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// Session is the context of one reduction request. It carries a locale, a
// time zone and a decimal environment. Reducers borrow the session for the
// duration of their invocation and must not store it.
//
// A session is not safe for concurrent use, and two sessions must not work
// on the same expression tree at the same time.
type Session struct {
	registry    *Registry
	locale      language.Tag
	timeZone    *time.Location
	decimal     *apd.Context
	traceLevel  tracing.TraceLevel
	adjustTrace bool
}

// SessionOption is a function that configures the session given some options.
type SessionOption func(*Session)

// WithTraceLevel sets the trace level for reduction requests of the session.
func WithTraceLevel(level tracing.TraceLevel) SessionOption {
	return func(s *Session) {
		s.traceLevel = level
		s.adjustTrace = true
	}
}

// NewSession creates a new session for reducers of a registry.
//
// locale is a BCP 47 language tag, e.g. "en-US". timeZone is a name of the
// IANA time zone database, e.g. "Europe/Vienna". precision is the number of
// significant digits of decimal arithmetic within this session; it has to
// be positive. Rounding is always towards zero.
func NewSession(registry *Registry, locale, timeZone string, precision uint32,
	opts ...SessionOption) (*Session, error) {
	//
	if registry == nil {
		return nil, ErrSessionSetup.Wrap(fmt.Errorf("registry is nil"))
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, ErrSessionSetup.Wrap(err)
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, ErrSessionSetup.Wrap(err)
	}
	if precision == 0 {
		return nil, ErrSessionSetup.Wrap(fmt.Errorf("precision must be positive"))
	}
	decimal := apd.BaseContext.WithPrecision(precision)
	decimal.Rounding = apd.RoundDown
	s := &Session{
		registry: registry,
		locale:   tag,
		timeZone: loc,
		decimal:  decimal,
	}
	for _, opt := range opts {
		opt(s)
	}
	tracer().Debugf("new session: locale=%s, tz=%s, precision=%d", tag, loc, precision)
	return s, nil
}

// Configuration keys for SessionFromConfig.
const (
	LocaleKey    = "formulae.locale"
	TimeZoneKey  = "formulae.timezone"
	PrecisionKey = "formulae.precision"
)

// Defaults for sessions created from configuration.
const (
	DefaultLocale    = "en"
	DefaultTimeZone  = "UTC"
	DefaultPrecision = 34
)

// ConfigSource is a source of configuration values, like the global
// configuration of package gconf.
type ConfigSource interface {
	GetString(key string) string
	GetInt(key string) int
}

type globalConfig struct{}

func (globalConfig) GetString(key string) string { return gconf.GetString(key) }
func (globalConfig) GetInt(key string) int       { return gconf.GetInt(key) }

// SessionFromConfig creates a session with parameters taken from the global
// configuration. Unset keys will fall back to defaults.
func SessionFromConfig(registry *Registry, opts ...SessionOption) (*Session, error) {
	return SessionWithConfig(registry, globalConfig{}, opts...)
}

// SessionWithConfig creates a session with parameters taken from conf.
// Unset keys will fall back to defaults.
func SessionWithConfig(registry *Registry, conf ConfigSource, opts ...SessionOption) (*Session, error) {
	locale := conf.GetString(LocaleKey)
	if locale == "" {
		locale = DefaultLocale
	}
	tz := conf.GetString(TimeZoneKey)
	if tz == "" {
		tz = DefaultTimeZone
	}
	precision := conf.GetInt(PrecisionKey)
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return NewSession(registry, locale, tz, uint32(precision), opts...)
}

// Registry returns the registry of reducers this session uses.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Locale returns the session's locale.
func (s *Session) Locale() language.Tag {
	return s.locale
}

// TimeZone returns the session's time zone.
func (s *Session) TimeZone() *time.Location {
	return s.timeZone
}

// Decimal returns the decimal environment of the session. All decimal
// arithmetic of reducers should be done with this context.
func (s *Session) Decimal() *apd.Context {
	return s.decimal
}

// Reduce reduces an expression within this session. It is intended for
// reducers which create new sub-trees in need of reduction.
func (s *Session) Reduce(e *expr.Expression) error {
	_, err := Reduce(e, s)
	return err
}

// ReduceAndGet reduces an expression and returns the node at the position
// of e afterwards, as reduction may have replaced e.
// index is the position of e within its parent; a negative index
// denotes the root position held by e's handler.
func (s *Session) ReduceAndGet(e *expr.Expression, index int) (*expr.Expression, error) {
	parent, handler := e.Parent(), e.Handler()
	if _, err := Reduce(e, s); err != nil {
		return nil, err
	}
	if index >= 0 {
		if parent == nil {
			panic("expression has no parent; cannot re-read child position")
		}
		return parent.Child(index), nil
	}
	if handler == nil {
		panic("expression is not held by a handler; cannot re-read root position")
	}
	return handler.Expression(), nil
}
