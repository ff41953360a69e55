package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Head of Growth", want: "Head of Growth"},
		{name: "tags", in: "<b>CEO</b> at <i>Acme</i>", want: "CEO at Acme"},
		{name: "encoded tag", in: "&lt;script&gt;alert(1)&lt;/script&gt;VP", want: "alert(1)VP"},
		{name: "bom and control", in: "\uFEFFAva\x00 Patel\r", want: "Ava Patel"},
		{name: "keeps newline", in: "line one\nline two", want: "line one\nline two"},
		{name: "trims", in: "   SaaS  ", want: "SaaS"},
		{name: "comparisons kept", in: "ARR <5M, growing >2x", want: "ARR <5M, growing >2x"},
		{name: "comment", in: "<!-- note -->Founder", want: "Founder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "héllo", Truncate("héllo", 10))
	assert.Equal(t, "héllo", Truncate("héllo", 0))
}
