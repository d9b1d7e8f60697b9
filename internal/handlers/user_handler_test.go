package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func avatarUpload(t *testing.T, size int) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("avatar", "avatar.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(bytes.Repeat([]byte{0xff}, size)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/users/avatar/1?user_id=1", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// Oversize uploads must be rejected outright, not truncated and stored.
func TestUploadAvatarRejectsOversizeFile(t *testing.T) {
	h := UserHandler{}

	rec := httptest.NewRecorder()
	h.UploadAvatar(rec, avatarUpload(t, maxAvatarBytes+1))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("oversize avatar: status %d, want 400", rec.Code)
	}
}

func TestUploadAvatarRequiresFile(t *testing.T) {
	h := UserHandler{}

	req := httptest.NewRequest(http.MethodPost, "/users/avatar/1?user_id=1", nil)
	rec := httptest.NewRecorder()
	h.UploadAvatar(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing file: status %d, want 400", rec.Code)
	}
}
