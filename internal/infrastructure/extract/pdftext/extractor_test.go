package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mhire/seev-services/internal/core/domain"
)

// noTextPDF builds a valid single-page PDF whose page carries no content
// stream, like an image-only scan after the images are stripped. Object
// offsets are computed while writing so the xref table stays correct.
func noTextPDF(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	offsets := make([]int, 4)

	buf.WriteString("%PDF-1.4\n")
	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = buf.Len()
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")

	xref := buf.Len()
	buf.WriteString("xref\n0 4\n")
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func TestExtractPDFNoTextYieldsEmptyString(t *testing.T) {
	e := NewExtractor(nil)
	got, err := e.ExtractPDF(context.Background(), noTextPDF(t))
	if err != nil {
		t.Fatalf("ExtractPDF: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string for a text-free page", got)
	}
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.ExtractPDF(context.Background(), []byte("not a pdf at all"))
	if !errors.Is(err, domain.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
}

func TestExtractPDFRejectsEmptyBody(t *testing.T) {
	e := NewExtractor(nil)
	_, err := e.ExtractPDF(context.Background(), nil)
	if !errors.Is(err, domain.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
}

func TestJoinPages(t *testing.T) {
	if got := joinPages([]string{"first page\n", "second page\n"}); got != "first page\n\n\nsecond page\n" {
		t.Errorf("joinPages = %q", got)
	}
	if got := joinPages([]string{"only"}); got != "only" {
		t.Errorf("joinPages single = %q", got)
	}
}
