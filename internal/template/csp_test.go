package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSecurityPolicy(t *testing.T) {
	tests := []struct {
		name         string
		unsafeInline bool
		hashes       Hashes
		want         string
	}{
		{
			name:         "unsafe inline ignores hashes",
			unsafeInline: true,
			hashes:       Hashes{Script: []string{"'sha256-a'"}},
			want:         "default-src 'self'; script-src 'unsafe-inline'; style-src 'unsafe-inline';",
		},
		{
			name: "no blocks",
			want: "default-src 'self'; script-src 'none'; style-src 'none';",
		},
		{
			name: "hashes are space separated",
			hashes: Hashes{
				Script: []string{"'sha256-a'", "'sha256-b'"},
				Style:  []string{"'sha256-c'"},
			},
			want: "default-src 'self'; script-src 'sha256-a' 'sha256-b'; style-src 'sha256-c';",
		},
		{
			name:   "only styles",
			hashes: Hashes{Style: []string{"'sha256-c'"}},
			want:   "default-src 'self'; script-src 'none'; style-src 'sha256-c';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentSecurityPolicy(tt.unsafeInline, tt.hashes))
		})
	}
}
