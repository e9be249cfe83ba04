package mdblock

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseRequest configures ParseReader.
type ParseRequest struct {
	Reader  io.Reader
	Options []ParseOption
}

// ParseReader reads all of Reader and classifies it into blocks.
//
// Reading is bounded by WithMaxBytes. Invalid UTF-8 and control runes are
// dropped unless WithStrictInput is set, in which case they are reported
// as ErrInvalidUTF8 or ErrBinaryInput.
func ParseReader(req ParseRequest) ([]Block, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	cfg := newParseConfig(req.Options)
	src, err := readLimited(req.Reader, cfg.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return parseBytes(src, cfg)
}

// ParseBytes classifies src after applying the ingestion options.
func ParseBytes(src []byte, opts ...ParseOption) ([]Block, error) {
	cfg := newParseConfig(opts)
	if cfg.maxBytes > 0 && int64(len(src)) > cfg.maxBytes {
		return nil, fmt.Errorf("parse: %w", ErrInputTooLarge)
	}
	return parseBytes(src, cfg)
}

func parseBytes(src []byte, cfg parseConfig) ([]Block, error) {
	if cfg.strict {
		if err := ValidateInput(src); err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
	} else {
		src = sanitizeBytes(src)
	}
	if cfg.normalize {
		src = norm.NFC.Bytes(src)
	}
	text := string(bytes.TrimPrefix(src, []byte("\ufeff")))
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if cfg.frontMatter {
		lines = stripFrontMatter(lines)
	}
	return Classify(lines), nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		return src, nil
	}
	src, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if int64(len(src)) > limit {
		return nil, ErrInputTooLarge
	}
	return src, nil
}
