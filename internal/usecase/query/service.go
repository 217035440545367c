package query

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skysearch/internal/codec"
	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/logger"
)

// Service encodes and decodes search tokens on behalf of a client.
type Service struct {
	codec *codec.Codec
	prefs Preferences
}

// New creates a query service. prefs may be nil (every client in advanced mode).
func New(c *codec.Codec, prefs Preferences) *Service {
	return &Service{codec: c, prefs: prefs}
}

// Encode turns m into a token, defaulting text by the client's simple mode.
func (s *Service) Encode(ctx context.Context, clientID string, m searchmodel.Model) (string, error) {
	token, err := s.codec.WithMode(s.mode(ctx, clientID)).Encode(m)
	if err != nil {
		return "", fmt.Errorf("encode search: %w", err)
	}
	return token, nil
}

// Decode parses a token. Bad tokens fail with *domain.MalformedQueryError.
func (s *Service) Decode(token string) (searchmodel.Model, error) {
	return s.codec.Decode(token)
}

// Resolve decodes token, falling back to the client's default model when
// the token is malformed. valid reports whether the token was usable.
func (s *Service) Resolve(ctx context.Context, clientID, token string) (searchmodel.Model, bool) {
	c := s.codec.WithMode(s.mode(ctx, clientID))
	m, err := c.Decode(token)
	if err == nil {
		return m, true
	}
	logger.FromContext(ctx).Info("unusable search token, using defaults",
		zap.Bool("malformed", errors.Is(err, domain.ErrMalformedQuery)), zap.Error(err))
	return c.ApplyDefaults(searchmodel.Model{}), false
}

func (s *Service) mode(ctx context.Context, clientID string) codec.ModeSource {
	if s.prefs == nil || clientID == "" {
		return codec.StaticMode(false)
	}
	pref, err := s.prefs.For(ctx, clientID)
	if err != nil {
		logger.FromContext(ctx).Warn("simple mode unavailable, using advanced mode",
			zap.String("client_id", clientID), zap.Error(err))
		return codec.StaticMode(false)
	}
	return pref
}
