package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-location"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/users/JohnDoe", "/users/JohnDoe"},
		{"space", "/hello%20world", "/hello world"},
		{"cyrillic", "/%D1%88%D0%B5%D0%BB%D0%BB%D1%8B", "/шеллы"},
		{"japanese", "/%E3%81%92%E3%82%93%E3%81%8D", "/げんき"},
		{"lower case hex", "/%d1%88", "/ш"},
		{"literal unicode", "/пользователи/показать все", "/пользователи/показать все"},
		{"mixed literal and encoded", "/hello%20мир", "/hello мир"},
		{"encoded slash is kept", "/a%2Fb", "/a%2Fb"},
		{"encoded reserved are kept", "/a%3Fb%23c%26d", "/a%3Fb%23c%26d"},
		{"lone percent", "/100%", "/100%"},
		{"bad hex", "/%G1/x", "/%G1/x"},
		{"truncated escape", "/%E3%81", "/%E3%81"},
		{"invalid utf8 kept", "/%FF%41", "/%FFA"},
		{"valid after invalid", "/%C3%28%C3%A9", "/%C3(é"},
		{"percent sign", "/50%25", "/50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, location.Decode(tt.in))
		})
	}
}

func TestDecodeIsIdempotentOnDecodedInput(t *testing.T) {
	for _, in := range []string{
		"/users/JohnDoe",
		"/пользователи/показать все/101/げんきです",
		"/a%2Fb",
		"/%G1",
	} {
		once := location.Decode(in)
		assert.Equal(t, once, location.Decode(once), in)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/users/JohnDoe", "/users/JohnDoe"},
		{"/hello world", "/hello%20world"},
		{"/шеллы", "/%D1%88%D0%B5%D0%BB%D0%BB%D1%8B"},
		{"/a?b=c&d#e", "/a?b=c&d#e"},
		{"/already%20encoded", "/already%20encoded"},
		{"/100%", "/100%25"},
		{"/it's-(fine)_~*!", "/it's-(fine)_~*!"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := location.Encode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, location.Encode(got))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, p := range []string{
		"/пользователи/показать все/101/げんきです",
		"/hello мир/rel",
		"/plain/path",
	} {
		assert.Equal(t, p, location.Decode(location.Encode(p)))
	}
}
