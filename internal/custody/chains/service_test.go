package chains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tesserex/custody/internal/custody/chains"
)

func TestParseRPCURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single",
			in:   "https://rpc.example.com",
			want: []string{"https://rpc.example.com"},
		},
		{
			name: "multiple with whitespace",
			in:   " https://a.example.com , https://b.example.com ",
			want: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name: "empty segments dropped",
			in:   "https://a.example.com,,https://b.example.com,",
			want: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chains.ParseRPCURLs(tt.in))
		})
	}
}
