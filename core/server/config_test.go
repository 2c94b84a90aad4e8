package server_test

import (
	"testing"

	"order-hub/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Prefix(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		want     string
	}{
		{"Default", "/api/order-hub", "/api/order-hub"},
		{"TrailingSlash", "/api/order-hub/", "/api/order-hub"},
		{"MissingLeadingSlash", "api", "/api"},
		{"Root", "/", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BasePath: tt.basePath}
			assert.Equal(t, tt.want, c.Prefix())
		})
	}
}

func TestConfig_AllowOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    string
	}{
		{"Any", "*", "*"},
		{"Empty", "", "*"},
		{"List", "http://a.test, http://b.test", "http://a.test,http://b.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{CORSOrigins: tt.origins}
			assert.Equal(t, tt.want, c.AllowOrigins())
		})
	}
}
