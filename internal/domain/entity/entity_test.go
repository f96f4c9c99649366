package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "10.00", want: 1000},
		{in: "10", want: 1000},
		{in: "10.5", want: 1050},
		{in: "0.01", want: 1},
		{in: "-3.20", want: -320},
		{in: " 7.25 ", want: 725},
		{in: "", wantErr: true},
		{in: "10.", wantErr: true},
		{in: ".5", wantErr: true},
		{in: "10.005", wantErr: true},
		{in: "10.-5", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "92233720368547758.07", want: Money(math.MaxInt64)},
		{in: "92233720368547758.08", wantErr: true},
		{in: "184467440737095516.17", wantErr: true},
		{in: "-92233720368547759.00", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.00", Money(1000).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-1.50", Money(-150).String())
	assert.InDelta(t, 12.34, Money(1234).Float64(), 1e-9)
}

func TestDefaultTarifDefaults(t *testing.T) {
	d := DefaultTarifDefaults()
	assert.Equal(t, "10.00", d.Price.String())
	assert.Equal(t, "USD", d.Currency)
	assert.Equal(t, "basic", d.Scope)
	assert.Equal(t, "monthly", d.Terms)
}

func TestEndDateForTerms(t *testing.T) {
	start := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		terms string
		want  *time.Time
	}{
		{terms: "daily", want: ptr(start.AddDate(0, 0, 1))},
		{terms: "weekly", want: ptr(start.AddDate(0, 0, 7))},
		{terms: "monthly", want: ptr(start.AddDate(0, 1, 0))},
		{terms: "quarterly", want: ptr(start.AddDate(0, 3, 0))},
		{terms: "yearly", want: ptr(start.AddDate(1, 0, 0))},
		{terms: "annual", want: ptr(start.AddDate(1, 0, 0))},
		{terms: "lifetime", want: nil},
		{terms: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.terms, func(t *testing.T) {
			got := EndDateForTerms(tt.terms, start)
			if tt.want == nil {
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
			assert.False(t, got.Before(start))
		})
	}
}

func TestSubscription_Cancel(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(48 * time.Hour)

	t.Run("open-ended window closes at now", func(t *testing.T) {
		sub := &Subscription{StartDate: start, Status: SubscriptionStatusActive}
		sub.Cancel(now)
		assert.Equal(t, SubscriptionStatusCancelled, sub.Status)
		require.NotNil(t, sub.EndDate)
		assert.True(t, sub.EndDate.Equal(now))
	})

	t.Run("future end date is truncated", func(t *testing.T) {
		sub := &Subscription{StartDate: start, EndDate: ptr(start.AddDate(0, 1, 0)), Status: SubscriptionStatusActive}
		sub.Cancel(now)
		assert.True(t, sub.EndDate.Equal(now))
	})

	t.Run("past end date is kept", func(t *testing.T) {
		past := start.Add(time.Hour)
		sub := &Subscription{StartDate: start, EndDate: ptr(past), Status: SubscriptionStatusActive}
		sub.Cancel(now)
		assert.True(t, sub.EndDate.Equal(past))
	})

	t.Run("end date never precedes start", func(t *testing.T) {
		sub := &Subscription{StartDate: now, Status: SubscriptionStatusActive}
		sub.Cancel(start)
		assert.True(t, sub.EndDate.Equal(now))
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		end := start.Add(time.Hour)
		sub := &Subscription{StartDate: start, EndDate: ptr(end), Status: SubscriptionStatusCancelled}
		sub.Cancel(now)
		assert.True(t, sub.EndDate.Equal(end))
	})
}

func TestSubscription_EffectiveStatus(t *testing.T) {
	now := time.Now()
	ended := &Subscription{Status: SubscriptionStatusActive, EndDate: ptr(now.Add(-time.Minute))}
	running := &Subscription{Status: SubscriptionStatusActive, EndDate: ptr(now.Add(time.Minute))}
	open := &Subscription{Status: SubscriptionStatusActive}
	cancelled := &Subscription{Status: SubscriptionStatusCancelled, EndDate: ptr(now.Add(-time.Minute))}

	assert.Equal(t, SubscriptionStatusExpired, ended.EffectiveStatus(now))
	assert.Equal(t, SubscriptionStatusActive, running.EffectiveStatus(now))
	assert.Equal(t, SubscriptionStatusActive, open.EffectiveStatus(now))
	assert.Equal(t, SubscriptionStatusCancelled, cancelled.EffectiveStatus(now))
	assert.False(t, SubscriptionStatus("paused").IsValid())
}

func TestTokenClaims_HasScope(t *testing.T) {
	claims := &TokenClaims{Scopes: []string{ScopeMe}}
	assert.True(t, claims.HasScope(ScopeMe))
	assert.False(t, claims.HasScope(ScopeItems))

	var nilClaims *TokenClaims
	assert.False(t, nilClaims.HasScope(ScopeMe))
}

func ptr(t time.Time) *time.Time { return &t }
