package reduction

import (
	"testing"
	_ "time/tzdata" // zone database for systems without one

	"github.com/cockroachdb/apd"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formulae.reduction")
	defer teardown()
	//
	r := NewRegistry()
	s, err := NewSession(r, "de-AT", "UTC", 20, WithTraceLevel(tracing.LevelDebug))
	require.NoError(t, err)
	require.Equal(t, "de-AT", s.Locale().String())
	require.Equal(t, "UTC", s.TimeZone().String())
	require.Equal(t, uint32(20), s.Decimal().Precision)
	require.Equal(t, r, s.Registry())
	require.True(t, s.adjustTrace)
}

func TestNewSessionErrors(t *testing.T) {
	r := NewRegistry()
	_, err := NewSession(r, "not a locale!", "UTC", 10)
	require.True(t, ErrSessionSetup.Is(err), "expected setup error for locale, got %v", err)
	_, err = NewSession(r, "en", "No/Such_Zone", 10)
	require.True(t, ErrSessionSetup.Is(err), "expected setup error for time zone, got %v", err)
	_, err = NewSession(r, "en", "UTC", 0)
	require.True(t, ErrSessionSetup.Is(err), "expected setup error for precision, got %v", err)
	_, err = NewSession(nil, "en", "UTC", 10)
	require.True(t, ErrSessionSetup.Is(err), "expected setup error for registry, got %v", err)
}

func TestSessionDecimalRounding(t *testing.T) {
	s, err := NewSession(NewRegistry(), "en", "UTC", 5)
	require.NoError(t, err)
	d := new(apd.Decimal)
	_, err = s.Decimal().Quo(d, apd.New(2, 0), apd.New(3, 0))
	require.NoError(t, err)
	require.Equal(t, "0.66666", d.String(), "expected rounding towards zero")
	//
	// sessions do not share their decimal environment
	other, err := NewSession(NewRegistry(), "en", "UTC", 8)
	require.NoError(t, err)
	require.Equal(t, uint32(5), s.Decimal().Precision)
	require.Equal(t, uint32(8), other.Decimal().Precision)
}

// mapConfig is a configuration source for tests.
type mapConfig map[string]interface{}

func (c mapConfig) GetString(key string) string {
	s, _ := c[key].(string)
	return s
}

func (c mapConfig) GetInt(key string) int {
	i, _ := c[key].(int)
	return i
}

func TestSessionFromConfigDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formulae.reduction")
	defer teardown()
	//
	s, err := SessionFromConfig(NewRegistry())
	require.NoError(t, err)
	require.Equal(t, DefaultLocale, s.Locale().String())
	require.Equal(t, DefaultTimeZone, s.TimeZone().String())
	require.Equal(t, uint32(DefaultPrecision), s.Decimal().Precision)
	//
	s, err = SessionWithConfig(NewRegistry(), mapConfig{})
	require.NoError(t, err)
	require.Equal(t, "en", s.Locale().String())
	require.Equal(t, "UTC", s.TimeZone().String())
	require.Equal(t, uint32(34), s.Decimal().Precision)
}

func TestSessionWithConfigOverrides(t *testing.T) {
	conf := mapConfig{
		LocaleKey:    "fr",
		TimeZoneKey:  "Etc/GMT+2",
		PrecisionKey: 12,
	}
	s, err := SessionWithConfig(NewRegistry(), conf)
	require.NoError(t, err)
	require.Equal(t, "fr", s.Locale().String())
	require.Equal(t, "Etc/GMT+2", s.TimeZone().String())
	require.Equal(t, uint32(12), s.Decimal().Precision)
	//
	conf[TimeZoneKey] = "No/Such_Zone"
	_, err = SessionWithConfig(NewRegistry(), conf)
	require.True(t, ErrSessionSetup.Is(err), "expected setup error for time zone, got %v", err)
}
