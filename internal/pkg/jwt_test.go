package pkg

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	TokenSecret = []byte("test-secret")

	token, err := EncodeToken("0191e7a2-1111-7000-8000-abcdefabcdef")
	if err != nil {
		t.Fatalf("EncodeToken: %v", err)
	}
	if token == "" {
		t.Fatal("token is empty")
	}

	id, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken: %v", err)
	}
	if id != "0191e7a2-1111-7000-8000-abcdefabcdef" {
		t.Errorf("id: got %q", id)
	}
}

func TestTokenTampered(t *testing.T) {
	TokenSecret = []byte("test-secret")

	token, err := EncodeToken("some-user")
	if err != nil {
		t.Fatalf("EncodeToken: %v", err)
	}

	// flip a character in the signature segment
	tampered := token[:len(token)-2] + flip(token[len(token)-2:])
	if _, err := DecodeToken(tampered); err == nil {
		t.Error("tampered token decoded")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	TokenSecret = []byte("test-secret")
	token, err := EncodeToken("some-user")
	if err != nil {
		t.Fatalf("EncodeToken: %v", err)
	}

	TokenSecret = []byte("another-secret")
	if _, err := DecodeToken(token); err == nil {
		t.Error("token signed with another secret decoded")
	}
}

func TestTokenGarbage(t *testing.T) {
	TokenSecret = []byte("test-secret")
	for _, in := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := DecodeToken(in); err == nil {
			t.Errorf("DecodeToken(%q) succeeded", in)
		}
	}
}

func flip(s string) string {
	if strings.HasSuffix(s, "A") {
		return s[:len(s)-1] + "B"
	}
	return s[:len(s)-1] + "A"
}
