// Package codec turns a search model into a compact URL-safe token and back.
//
// A token is the model flattened to a query string, zstd-compressed and
// written in unpadded base64url, so it only ever contains [A-Za-z0-9_-]
// and can be used as a single path segment.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/metrics"
)

// maxDecodedSize bounds the decompressed payload of a single token.
const maxDecodedSize = 1 << 20

var tokenEncoding = base64.RawURLEncoding

// FilterLookup resolves registered filter keys.
type FilterLookup interface {
	LookupByKey(key string) (filter.Descriptor, bool)
}

// ModeSource reports the current UI mode used for the text default.
type ModeSource interface {
	IsSimpleMode() bool
}

// StaticMode is a fixed ModeSource.
type StaticMode bool

// IsSimpleMode implements ModeSource.
func (m StaticMode) IsSimpleMode() bool { return bool(m) }

// Codec encodes and decodes search tokens. It is safe for concurrent use.
type Codec struct {
	filters FilterLookup
	mode    ModeSource
	enc     *zstd.Encoder
	dec     *zstd.Decoder
}

// New creates a codec. mode may be nil (advanced mode).
func New(filters FilterLookup, mode ModeSource) (*Codec, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithEncoderCRC(false),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(maxDecodedSize),
	)
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	if mode == nil {
		mode = StaticMode(false)
	}
	return &Codec{filters: filters, mode: mode, enc: enc, dec: dec}, nil
}

// WithMode returns a codec sharing the compressors but reading another mode.
func (c *Codec) WithMode(mode ModeSource) *Codec {
	if mode == nil {
		mode = StaticMode(false)
	}
	cp := *c
	cp.mode = mode
	return &cp
}

// Close releases the decoder. Codecs derived with WithMode share it.
func (c *Codec) Close() {
	c.dec.Close()
	_ = c.enc.Close()
}

// ApplyDefaults fills page, pageSize and text using the current mode.
func (c *Codec) ApplyDefaults(m searchmodel.Model) searchmodel.Model {
	return m.WithDefaults(c.mode.IsSimpleMode())
}

// Encode serializes m (after defaulting) into a token.
func (c *Codec) Encode(m searchmodel.Model) (string, error) {
	token, err := c.encode(c.ApplyDefaults(m))
	if err != nil {
		metrics.CodecOperationsTotal.WithLabelValues("encode", "error").Inc()
		return "", err
	}
	metrics.CodecOperationsTotal.WithLabelValues("encode", "ok").Inc()
	return token, nil
}

func (c *Codec) encode(m searchmodel.Model) (string, error) {
	values, err := c.flatten(m)
	if err != nil {
		return "", err
	}
	compressed := c.enc.EncodeAll([]byte(values.Encode()), nil)
	return tokenEncoding.EncodeToString(compressed), nil
}

// Decode parses a token produced by Encode. Any failure to decompress or
// parse the payload is a *domain.MalformedQueryError. Missing or
// non-positive paging and a missing text filter come back defaulted.
func (c *Codec) Decode(token string) (searchmodel.Model, error) {
	m, err := c.decode(token)
	if err != nil {
		metrics.CodecOperationsTotal.WithLabelValues("decode", "malformed").Inc()
		return searchmodel.Model{}, err
	}
	metrics.CodecOperationsTotal.WithLabelValues("decode", "ok").Inc()
	return m, nil
}

func (c *Codec) decode(token string) (searchmodel.Model, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return searchmodel.Model{}, domain.NewMalformedQuery("empty token", nil)
	}
	compressed, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return searchmodel.Model{}, domain.NewMalformedQuery("base64", err)
	}
	raw, err := c.dec.DecodeAll(compressed, nil)
	if err != nil {
		return searchmodel.Model{}, domain.NewMalformedQuery("decompress", err)
	}
	return c.unflatten(string(raw))
}

func (c *Codec) registered(key string) bool {
	if c.filters == nil {
		return false
	}
	_, ok := c.filters.LookupByKey(key)
	return ok
}

// parseInt reads page and pageSize, which older tokens wrote as JSON strings.
func parseInt(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return strconv.Atoi(s)
}
