package domain

import (
	"errors"
	"strings"
)

type FileKind string

const (
	KindPDF   FileKind = "pdf"
	KindImage FileKind = "image"
)

// UploadedDocument is the ephemeral payload of one extraction request.
// It lives only for the duration of the request.
type UploadedDocument struct {
	Content  []byte
	MimeType string
	Filename string
}

var imageMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/jpg",
	"image/webp",
	"image/tiff",
}

var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".webp", ".tiff", ".bmp", ".gif",
}

var errUnsupportedUpload = errors.New("please upload an image (JPG, PNG, etc.) or PDF file")

// DetectFileKind classifies an upload from its declared MIME type and
// filename. The PDF check runs first, so a PDF MIME type wins over an
// image extension. Both inputs may be empty.
func DetectFileKind(mimeType, filename string) (FileKind, error) {
	mime := strings.ToLower(mimeType)
	name := strings.ToLower(filename)

	if mime == "application/pdf" || strings.HasSuffix(name, ".pdf") {
		return KindPDF, nil
	}

	for _, t := range imageMimeTypes {
		if strings.Contains(mime, t) {
			return KindImage, nil
		}
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return KindImage, nil
		}
	}

	return "", WrapError(ErrUnsupportedType, "detect file kind", errUnsupportedUpload)
}
