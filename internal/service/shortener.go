package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"tinylink/internal/codegen"
	"tinylink/internal/model"
	"tinylink/internal/repository"
	"tinylink/pkg/util"

	"github.com/rs/zerolog/log"
)

const maxURLLength = 2048

var (
	// ErrInvalidURL is returned when the long URL fails validation
	ErrInvalidURL = errors.New("invalid URL")
	// ErrBlockedURL is returned when the long URL matches the blocklist
	ErrBlockedURL = errors.New("URL is blocked")
	// ErrInvalidAlias is returned when a custom alias fails validation
	ErrInvalidAlias = errors.New("invalid custom alias")
	// ErrAliasTaken is returned when a custom alias is already bound
	ErrAliasTaken = errors.New("custom alias already taken")
	// ErrCodeSpaceExhausted is returned when code generation keeps colliding
	ErrCodeSpaceExhausted = errors.New("short code space exhausted")
	// ErrNotFound is returned when a short code does not resolve
	ErrNotFound = errors.New("short link not found")
	// ErrExpired is returned when a short link has passed its expiry
	ErrExpired = errors.New("short link has expired")
	// ErrStoreUnavailable is returned when the durable store cannot answer
	ErrStoreUnavailable = errors.New("store unavailable")
)

var ownerIDSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// Shortener orchestrates creation and lookup of short links: validation,
// deduplication, code generation, persistence and cache population. It holds
// no locks; the store's unique keys are the only serialization points.
type Shortener struct {
	store     repository.StoreInterface
	cache     repository.CacheInterface
	gen       *codegen.Generator
	blocklist BlocklistInterface

	baseURL     string
	urlTTL      time.Duration
	dedupTTL    time.Duration
	maxAttempts int
}

// NewShortener creates a new Shortener
func NewShortener(
	store repository.StoreInterface,
	cache repository.CacheInterface,
	gen *codegen.Generator,
	blocklist BlocklistInterface,
	baseURL string,
	urlTTL, dedupTTL time.Duration,
	maxAttempts int,
) *Shortener {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Shortener{
		store:       store,
		cache:       cache,
		gen:         gen,
		blocklist:   blocklist,
		baseURL:     strings.TrimRight(baseURL, "/"),
		urlTTL:      urlTTL,
		dedupTTL:    dedupTTL,
		maxAttempts: maxAttempts,
	}
}

// Create shortens a URL. Repeated calls with the same URL return the
// existing canonical code with Created=false; a custom alias bypasses
// deduplication because the caller wants that code specifically.
func (s *Shortener) Create(ctx context.Context, req *model.CreateRequest) (*model.CreateResponse, error) {
	longURL, err := s.validateLongURL(req.URL)
	if err != nil {
		return nil, err
	}

	alias := strings.TrimSpace(req.CustomAlias)
	if alias != "" {
		if err := codegen.ValidateAlias(alias); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlias, err)
		}
	}

	urlHash := util.HashURL(longURL)

	if alias == "" {
		if resp, err := s.lookupExisting(ctx, longURL, urlHash); err != nil {
			return nil, err
		} else if resp != nil {
			return resp, nil
		}
	}

	var expiresAt *time.Time
	if req.TTLDays > 0 {
		t := time.Now().Add(time.Duration(req.TTLDays) * 24 * time.Hour)
		expiresAt = &t
	}

	ownerID := ownerIDSanitizer.ReplaceAllString(req.OwnerID, "")
	if len(ownerID) > 100 {
		ownerID = ownerID[:100]
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code := alias
		if code == "" {
			code, err = s.gen.Generate(ctx, urlHash)
			if err != nil {
				if errors.Is(err, codegen.ErrSequenceUnavailable) {
					return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
				}
				return nil, err
			}

			// Candidate probe: a code bound to a different URL is a
			// collision, regenerate before paying for the write.
			_, err = s.store.GetByCode(ctx, code)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
		}

		link := &model.Link{
			ShortCode:     code,
			LongURL:       longURL,
			URLHash:       urlHash,
			ExpiresAt:     expiresAt,
			OwnerID:       ownerID,
			IsCustomAlias: alias != "",
			Status:        model.StatusActive,
		}

		var dedup *model.DedupEntry
		if alias == "" {
			dedup = &model.DedupEntry{URLHash: urlHash, ShortCode: code}
		}

		err = s.store.PutAtomic(ctx, link, dedup)
		if err == nil {
			s.populateCaches(ctx, link)
			return s.buildResponse(link, true), nil
		}

		if !errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		if alias != "" {
			return nil, ErrAliasTaken
		}

		// Lost a race: if another creator claimed the hash, return the
		// winner's code; otherwise the candidate code itself collided and
		// a fresh candidate is needed.
		if resp, lerr := s.lookupExisting(ctx, longURL, urlHash); lerr != nil {
			return nil, lerr
		} else if resp != nil {
			return resp, nil
		}
	}

	log.Error().Str("url_hash", urlHash).Int("attempts", s.maxAttempts).
		Msg("Exhausted short code generation attempts")
	return nil, ErrCodeSpaceExhausted
}

// Resolve returns the link for a short code, serving from the url-cache
// when possible. Deactivated codes are indistinguishable from unknown ones.
func (s *Shortener) Resolve(ctx context.Context, shortCode string) (*model.Link, error) {
	if !codegen.IsValidCode(shortCode) {
		return nil, ErrNotFound
	}

	entry, err := s.cache.GetURL(ctx, shortCode)
	if err == nil {
		if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
			s.cache.DeleteURL(ctx, shortCode)
			return nil, ErrExpired
		}
		return &model.Link{
			ShortCode: shortCode,
			LongURL:   entry.LongURL,
			ExpiresAt: entry.ExpiresAt,
			Status:    model.StatusActive,
		}, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		log.Warn().Err(err).Msg("Cache unavailable, falling back to store")
	}

	link, err := s.store.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if link.Status != model.StatusActive {
		return nil, ErrNotFound
	}
	if link.IsExpired() {
		s.cache.DeleteURL(ctx, shortCode)
		return nil, ErrExpired
	}

	s.populateCaches(ctx, link)
	return link, nil
}

// Deactivate soft-deletes a link and invalidates its cache entries
func (s *Shortener) Deactivate(ctx context.Context, shortCode string) error {
	if !codegen.IsValidCode(shortCode) {
		return ErrNotFound
	}

	link, err := s.store.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := s.store.Deactivate(ctx, shortCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := s.cache.DeleteURL(ctx, shortCode); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to evict url cache entry")
	}
	if err := s.cache.DeleteDedup(ctx, link.URLHash); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to evict dedup cache entry")
	}
	return nil
}

// Stats returns click statistics for a short code. Counts are approximate:
// the Redis counter is preferred, persisted click events are the fallback.
func (s *Shortener) Stats(ctx context.Context, shortCode string) (*model.StatsResponse, error) {
	if !codegen.IsValidCode(shortCode) {
		return nil, ErrNotFound
	}

	link, err := s.store.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if link.Status != model.StatusActive {
		return nil, ErrNotFound
	}

	clicks, err := s.cache.GetClicks(ctx, shortCode)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			log.Warn().Err(err).Msg("Cache unavailable for click count")
		}
		clicks, err = s.store.CountClickEvents(ctx, shortCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	return &model.StatsResponse{
		ShortCode: link.ShortCode,
		LongURL:   link.LongURL,
		Clicks:    clicks,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

// validateLongURL sanitizes and validates a long URL
func (s *Shortener) validateLongURL(raw string) (string, error) {
	raw = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return -1
		}
		return r
	}, raw))

	if raw == "" {
		return "", fmt.Errorf("%w: empty URL", ErrInvalidURL)
	}
	if len(raw) > maxURLLength {
		return "", fmt.Errorf("%w: URL exceeds %d characters", ErrInvalidURL, maxURLLength)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q not allowed", ErrInvalidURL, u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	if s.blocklist != nil && s.blocklist.IsBlocked(raw, host) {
		return "", ErrBlockedURL
	}

	return raw, nil
}

// lookupExisting implements the dedup check: cache first, then the store's
// dedup index. A stale index entry (expired or deactivated record) releases
// the hash so the URL can be shortened again.
func (s *Shortener) lookupExisting(ctx context.Context, longURL, urlHash string) (*model.CreateResponse, error) {
	code, err := s.cache.GetDedup(ctx, urlHash)
	if err == nil && code != "" {
		return &model.CreateResponse{
			ShortCode: code,
			ShortURL:  s.shortURL(code),
			LongURL:   longURL,
			Created:   false,
		}, nil
	}
	if err != nil && !errors.Is(err, repository.ErrCacheMiss) {
		log.Warn().Err(err).Msg("Dedup cache unavailable, falling back to store")
	}

	entry, err := s.store.GetDedup(ctx, urlHash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	link, err := s.store.GetByCode(ctx, entry.ShortCode)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err == nil && link.IsActive() {
		s.populateCaches(ctx, link)
		return s.buildResponse(link, false), nil
	}

	// Stale index entry: free the slot and let the caller mint a new code.
	if rerr := s.store.ReleaseHash(ctx, urlHash); rerr != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, rerr)
	}
	if cerr := s.cache.DeleteDedup(ctx, urlHash); cerr != nil {
		log.Warn().Err(cerr).Msg("Failed to evict stale dedup cache entry")
	}
	return nil, nil
}

// populateCaches writes through both cache namespaces, each TTL bounded by
// the record's remaining lifetime so no entry outlives its record. Failures
// are logged, never surfaced: the cache is an optimization, not a dependency.
func (s *Shortener) populateCaches(ctx context.Context, link *model.Link) {
	urlTTL, dedupTTL := s.urlTTL, s.dedupTTL
	if link.ExpiresAt != nil {
		remaining := time.Until(*link.ExpiresAt)
		if remaining <= 0 {
			return
		}
		if remaining < urlTTL {
			urlTTL = remaining
		}
		if remaining < dedupTTL {
			dedupTTL = remaining
		}
	}
	if urlTTL <= 0 || dedupTTL <= 0 {
		return
	}

	entry := &repository.CachedURL{LongURL: link.LongURL, ExpiresAt: link.ExpiresAt}
	if err := s.cache.SetURL(ctx, link.ShortCode, entry, urlTTL); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to populate url cache")
	}

	if !link.IsCustomAlias {
		if err := s.cache.SetDedup(ctx, link.URLHash, link.ShortCode, dedupTTL); err != nil {
			log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to populate dedup cache")
		}
	}
}

func (s *Shortener) buildResponse(link *model.Link, created bool) *model.CreateResponse {
	return &model.CreateResponse{
		ShortCode: link.ShortCode,
		ShortURL:  s.shortURL(link.ShortCode),
		LongURL:   link.LongURL,
		Created:   created,
		ExpiresAt: link.ExpiresAt,
	}
}

func (s *Shortener) shortURL(code string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, code)
}
