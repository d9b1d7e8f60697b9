package utils

import "testing"

func TestS3KeyFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://bucket.example.com/avatars/1_abc.jpg", "avatars/1_abc.jpg"},
		{"https://bucket.example.com/", ""},
		{"https://bucket.example.com", ""},
		{"://not-a-url", ""},
	}

	for _, tc := range cases {
		if got := S3KeyFromURL(tc.url); got != tc.want {
			t.Errorf("S3KeyFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
