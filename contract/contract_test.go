package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		params map[string]string
		want   string
	}{
		{"slug", Articles.Get.Path, map[string]string{"slug": "market-rally"}, "/api/articles/market-rally"},
		{"id", Articles.Update.Path, map[string]string{"id": "42"}, "/api/articles/42"},
		{"symbol", Stocks.Get.Path, map[string]string{"symbol": "NIFTY"}, "/api/stocks/NIFTY"},
		{"no params", Articles.List.Path, nil, "/api/articles"},
		{"unused param", Articles.List.Path, map[string]string{"slug": "x"}, "/api/articles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildURL(tc.path, tc.params))
		})
	}
}

func TestMutationsRequireAuth(t *testing.T) {
	assert.False(t, Articles.List.Auth)
	assert.False(t, Articles.Get.Auth)
	assert.False(t, Articles.Search.Auth)
	assert.False(t, Stocks.List.Auth)

	assert.True(t, Articles.Create.Auth)
	assert.True(t, Articles.Update.Auth)
	assert.True(t, Articles.Delete.Auth)
}
