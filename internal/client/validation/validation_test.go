package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "minimal valid", email: "a@b.co", want: true},
		{name: "typical", email: "user.name@example.org", want: true},
		{name: "no dot after at", email: "a@b", want: false},
		{name: "no at", email: "abc", want: false},
		{name: "empty", email: "", want: false},
		{name: "whitespace in local part", email: "a b@c.de", want: false},
		{name: "two ats", email: "a@b@c.de", want: false},
		{name: "dot but empty tld", email: "a@b.", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword(""))
	assert.False(t, IsValidPassword("abcde"))
	assert.True(t, IsValidPassword("abcdef"))
	assert.True(t, IsValidPassword("abcdefg"))
}

func TestPasswordsMatch(t *testing.T) {
	assert.True(t, PasswordsMatch("abc123", "abc123"))
	assert.False(t, PasswordsMatch("abc123", "abc124"))
	assert.False(t, PasswordsMatch("abc123", ""))
}

func TestIsValidTip(t *testing.T) {
	tests := []struct {
		name string
		tip  string
		want bool
	}{
		{
			name: "valid sentence",
			tip:  "Please remember to recycle your plastics and paper today.",
			want: true,
		},
		{
			name: "valid with surrounding whitespace",
			tip:  "  Please remember to recycle your plastics and paper today.  ",
			want: true,
		},
		{
			name: "valid ending in exclamation",
			tip:  "Turn off the lights when you leave a room, every time!",
			want: true,
		},
		{
			name: "no capital, no punctuation, too short",
			tip:  "hello world",
			want: false,
		},
		{
			name: "too short even with shape",
			tip:  "Recycle more often.",
			want: false,
		},
		{
			name: "missing terminal punctuation",
			tip:  "Please remember to recycle your plastics and paper today",
			want: false,
		},
		{
			name: "starts lowercase",
			tip:  "please remember to recycle your plastics and paper today.",
			want: false,
		},
		{
			name: "disallowed character in body",
			tip:  "Please remember to recycle 100% of your plastics today.",
			want: false,
		},
		{
			name: "too long",
			tip:  "A" + strings.Repeat("b", 301) + ".",
			want: false,
		},
		{
			name: "empty",
			tip:  "",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidTip(tc.tip))
		})
	}
}
