package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat marks an upload whose extension is neither .pdf nor
// .docx. Handlers map it to a client error; everything else from the
// extractor is a server fault.
var ErrUnsupportedFormat = errors.New("unsupported file format")

type DocumentExtractorService interface {
	ExtractText(file *multipart.FileHeader) (string, error)
}

type documentExtractorService struct{}

func NewDocumentExtractorService() DocumentExtractorService {
	return &documentExtractorService{}
}

// ExtractText dispatches on the uploaded filename's extension
// (case-insensitive) and returns the document's plain text.
func (s *documentExtractorService) ExtractText(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDFText concatenates page texts, one trailing newline per page.
// Pages with no extractable text contribute nothing.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

// extractDocxText joins paragraph texts with newlines. Empty paragraphs stay
// as empty lines.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to parse docx content: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks the WordprocessingML body, collecting the run text of
// body-level w:p elements. Paragraphs nested inside w:tbl are skipped.
// The docx library exposes the raw document XML only, so paragraph
// boundaries are recovered here.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false
	tableDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					current.Reset()
				}
			case "t":
				inText = inParagraph
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		}
	}

	return paragraphs, nil
}
