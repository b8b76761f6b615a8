package recurring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{
			name: "simple lowercase",
			desc: "Spotify Subscription",
			want: "spotify subscription",
		},
		{
			name: "paypal pass-through keeps merchant",
			desc: "PAYPAL INST XFER SPOTIFY*REF123",
			want: "spotify",
		},
		{
			name: "strips transfer boilerplate",
			desc: "ACH DEBIT NETFLIX.COM",
			want: "netflix com",
		},
		{
			name: "strips trailing reference numbers",
			desc: "COMCAST CABLE 000123456789",
			want: "comcast cable",
		},
		{
			name: "collapses whitespace",
			desc: "  City   Water    Utility ",
			want: "city water utility",
		},
		{
			name: "check number stripped",
			desc: "CHECK #1023",
			want: "check",
		},
		{
			name: "empty after normalization",
			desc: "ACH XFER 99887766",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.desc))
		})
	}
}

func TestMerchantKey(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{name: "plain vendor", desc: "Spotify Subscription", want: "spotify"},
		{name: "processor pass-through", desc: "PAYPAL INST XFER SPOTIFY*REF123", want: "spotify"},
		{name: "nothing left", desc: "ACH TRANSFER 12345678", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MerchantKey(tt.desc))
		})
	}
}

func TestIsCheck(t *testing.T) {
	assert.True(t, IsCheck("CHECK #1023"))
	assert.True(t, IsCheck("Check# 244"))
	assert.True(t, IsCheck("CHK 1023"))
	assert.True(t, IsCheck("ck 512"))
	assert.False(t, IsCheck("Checkers Drive-In"))
	assert.False(t, IsCheck("Spotify Subscription"))
}

func TestIsKnownSubscription(t *testing.T) {
	assert.True(t, IsKnownSubscription("spotify"))
	assert.True(t, IsKnownSubscription("gym membership"))
	assert.True(t, IsKnownSubscription("news subscription"))
	assert.False(t, IsKnownSubscription("grocery store"))
}

func TestLooksLikeIncome(t *testing.T) {
	assert.True(t, LooksLikeIncome("ACME CORP PAYROLL", ""))
	assert.True(t, LooksLikeIncome("Direct Deposit Salary", ""))
	assert.True(t, LooksLikeIncome("Monthly paycheck", ""))
	assert.True(t, LooksLikeIncome("ACME CORP", "Salary"))
	assert.False(t, LooksLikeIncome("Refund from Amazon", ""))
	assert.False(t, LooksLikeIncome("Venmo cashout", "Transfers"))
}

func TestCommonTokenShare(t *testing.T) {
	tests := []struct {
		name         string
		descriptions []string
		wantToken    string
		wantShare    float64
	}{
		{
			name:         "identical vendors",
			descriptions: []string{"Spotify Subscription", "SPOTIFY*REF1", "spotify"},
			wantToken:    "spotify",
			wantShare:    1.0,
		},
		{
			name:         "unrelated same-amount purchases",
			descriptions: []string{"Walgreens Pharmacy", "CVS Pharmacy", "Rite Aid", "Target"},
			wantShare:    0.5,
		},
		{
			name:         "empty input",
			descriptions: nil,
			wantToken:    "",
			wantShare:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, share := commonTokenShare(tt.descriptions)
			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, token)
			}
			assert.InDelta(t, tt.wantShare, share, 0.001)
		})
	}
}
