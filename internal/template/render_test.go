package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		host      string
		userAgent string
		want      string
	}{
		{
			name: "host only",
			html: "<p>{{ host }}</p>",
			host: "example.com",
			want: "<p>example.com</p>",
		},
		{
			name:      "host and user agent",
			html:      "<p>{{ host }}</p><p>{{ user-agent }}</p>",
			host:      "example.com:8080",
			userAgent: "curl/8.0",
			want:      "<p>example.com:8080</p><p>curl/8.0</p>",
		},
		{
			name:      "other placeholders stay",
			html:      "{{ host }} {{ version }}",
			host:      "h",
			userAgent: "ua",
			want:      "h {{ version }}",
		},
		{
			name:      "values are escaped",
			html:      "<p>{{ user-agent }}</p>",
			userAgent: `<script>alert("x")</script>`,
			want:      "<p>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>",
		},
		{
			name:      "substituted values are not substituted again",
			html:      "{{ host }}|{{ user-agent }}",
			host:      "{{ user-agent }}",
			userAgent: "ua",
			want:      "{{ user-agent }}|ua",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, _ := Build(tt.html, nil, nil)
			assert.Equal(t, tt.want, tmpl.Render(tt.host, tt.userAgent))
		})
	}
}

func TestRender_DoesNotModifyTemplate(t *testing.T) {
	tmpl, _ := Build("<p>{{ host }}</p>", nil, nil)

	_ = tmpl.Render("a", "b")

	assert.Equal(t, "<p>{{ host }}</p>", tmpl.Text())
}
