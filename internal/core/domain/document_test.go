package domain

import "testing"

func TestDetectFileKind(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		filename string
		want     FileKind
		wantErr  bool
	}{
		{"pdf mime wins over image extension", "application/pdf", "x.jpg", KindPDF, false},
		{"pdf extension case-insensitive", "", "report.PDF", KindPDF, false},
		{"image mime without filename", "image/png", "", KindImage, false},
		{"image extension without mime", "", "scan.jpeg", KindImage, false},
		{"bmp extension", "application/octet-stream", "scan.bmp", KindImage, false},
		{"gif extension", "", "anim.GIF", KindImage, false},
		{"webp mime", "image/webp", "photo", KindImage, false},
		{"plain text rejected", "text/plain", "x.txt", "", true},
		{"empty inputs rejected", "", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := DetectFileKind(tc.mimeType, tc.filename)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DetectFileKind(%q, %q) expected error", tc.mimeType, tc.filename)
				}
				if !IsKind(err, ErrUnsupportedType) {
					t.Fatalf("expected ErrUnsupportedType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFileKind(%q, %q) error = %v", tc.mimeType, tc.filename, err)
			}
			if kind != tc.want {
				t.Fatalf("DetectFileKind(%q, %q) = %q, want %q", tc.mimeType, tc.filename, kind, tc.want)
			}
		})
	}
}
