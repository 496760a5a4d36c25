package preview

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	snippetRunes = 280
)

// AdvisoryAccept is the file picker filter. It is a hint for the picker only.
var AdvisoryAccept = []string{".pdf", ".doc", ".docx"}

// Preview describes what could be read locally from a selected resume.
type Preview struct {
	Kind      string `json:"kind"`
	MimeType  string `json:"mimeType"`
	Accepted  bool   `json:"accepted"`
	Pages     int    `json:"pages,omitempty"`
	Snippet   string `json:"snippet,omitempty"`
	Extracted bool   `json:"extracted"`
	Note      string `json:"note,omitempty"`
}

// Accepted reports whether name passes the advisory extension filter.
func Accepted(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AdvisoryAccept {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Inspect reads a short text snippet from data. It never fails: problems are
// reported in Note and leave Extracted false.
func Inspect(ctx context.Context, data []byte, fileName string, mimeType string) Preview {
	mimeType = DetectMimeType(mimeType, fileName, data)
	p := Preview{
		Kind:     kindOf(mimeType),
		MimeType: mimeType,
		Accepted: Accepted(fileName),
	}
	if err := ctx.Err(); err != nil {
		p.Note = err.Error()
		return p
	}

	var (
		text string
		err  error
	)
	switch mimeType {
	case MimePDF:
		text, p.Pages, err = extractPDF(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	case MimeDOC:
		p.Note = "preview not available for .doc files"
		return p
	default:
		p.Note = fmt.Sprintf("preview not available for %s", mimeType)
		return p
	}
	if err != nil {
		p.Note = "could not read file: " + err.Error()
		return p
	}
	p.Snippet = snippet(text, snippetRunes)
	p.Extracted = true
	return p
}

// DetectMimeType normalizes a declared MIME type, falling back to content
// sniffing and the file extension when the declaration is generic.
func DetectMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case "", "application/octet-stream", "application/zip", "binary/octet-stream":
	default:
		return clean
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return MimePDF
	}
	if isDocxZip(data) {
		return MimeDOCX
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".doc":
		return MimeDOC
	}
	if clean == "" {
		return "application/octet-stream"
	}
	return clean
}

func kindOf(mimeType string) string {
	switch mimeType {
	case MimePDF:
		return "pdf"
	case MimeDOCX:
		return "docx"
	case MimeDOC:
		return "doc"
	default:
		return "other"
	}
}

func extractPDF(data []byte) (text string, pages int, err error) {
	defer func() {
		// ledongthuc/pdf panics on some malformed inputs.
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}
	pages = reader.NumPage()
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", pages, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(plain, 64<<10)); err != nil {
		return "", pages, err
	}
	return buf.String(), pages, nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func isDocxZip(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

func snippet(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
