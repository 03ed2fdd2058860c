package parser

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"tab wins", "a\tb;c|d\n1\t2", '\t'},
		{"semicolon before pipe", "a;b|c\n1;2", ';'},
		{"pipe", "a|b\n1|2", '|'},
		{"default comma", "a,b\n1,2", ','},
		{"only first line counts", "ab\n1\t2", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.text); got != tt.want {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDelimited_CSV(t *testing.T) {
	data := []byte("month,sales,note\n\nJan,10,\"a, b\"\nFeb,12.5,\n")

	ds, err := Parse(data, FormatCSV, "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ds.Rows))
	}
	if ds.Rows[0][2] != "a, b" {
		t.Errorf("Expected quoted field, got %v", ds.Rows[0][2])
	}
	if ds.Rows[1][1] != 12.5 {
		t.Errorf("Expected 12.5, got %v", ds.Rows[1][1])
	}
	if ds.Rows[1][2] != nil {
		t.Errorf("Expected empty cell as nil, got %v", ds.Rows[1][2])
	}
}

func TestParseDelimited_TSV(t *testing.T) {
	ds, err := Parse([]byte("x\ty\n1\t2\n"), FormatTSV, "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ds.Headers[1] != "y" || ds.Rows[0][1] != int64(2) {
		t.Errorf("unexpected dataset: %+v", ds)
	}
}

func TestParseTXT_DetectsDelimiter(t *testing.T) {
	ds, err := ParseTXT([]byte("a;b\n1;2\n3;4\n"))
	if err != nil {
		t.Fatalf("ParseTXT failed: %v", err)
	}
	if len(ds.Headers) != 2 || len(ds.Rows) != 2 {
		t.Errorf("unexpected shape: %d headers, %d rows", len(ds.Headers), len(ds.Rows))
	}
}

func TestParseDelimited_HeaderOnly(t *testing.T) {
	_, err := Parse([]byte("a,b\n"), FormatCSV, "")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParseError, got %v", err)
	}
}

func TestDecodeText(t *testing.T) {
	bom := append([]byte{0xEF, 0xBB, 0xBF}, "名称,值"...)
	got, err := DecodeText(bom)
	if err != nil || got != "名称,值" {
		t.Errorf("UTF-8 BOM: got %q, %v", got, err)
	}

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("名称,值"))
	if err != nil {
		t.Fatalf("encode UTF-16: %v", err)
	}
	got, err = DecodeText(utf16)
	if err != nil || got != "名称,值" {
		t.Errorf("UTF-16: got %q, %v", got, err)
	}

	gb, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte("名称,值"))
	if err != nil {
		t.Fatalf("encode GB18030: %v", err)
	}
	got, err = DecodeText(gb)
	if err != nil || got != "名称,值" {
		t.Errorf("GB18030: got %q, %v", got, err)
	}
}
