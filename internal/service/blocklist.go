package service

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"regexp"
	"strings"
	"sync/atomic"

	"tinylink/internal/config"

	"github.com/rs/zerolog/log"
)

// Blocklist decides whether a URL may be shortened. Rules live in an
// immutable snapshot swapped atomically on reload, so lookups never take a
// lock.
type Blocklist struct {
	rules atomic.Pointer[blockRules]
}

type blockRules struct {
	domains      map[string]struct{}
	tlds         map[string]struct{}
	patterns     []*regexp.Regexp
	blockPrivate bool
}

// NewBlocklist builds a blocklist from configuration. The optional file
// holds one domain per line, # comments allowed.
func NewBlocklist(cfg *config.BlocklistConfig) (*Blocklist, error) {
	b := &Blocklist{}
	if err := b.Reload(cfg); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload replaces the rule snapshot. Safe to call while lookups run.
func (b *Blocklist) Reload(cfg *config.BlocklistConfig) error {
	rules := &blockRules{
		domains:      make(map[string]struct{}),
		tlds:         make(map[string]struct{}),
		blockPrivate: cfg.BlockPrivateHosts,
	}

	for _, d := range cfg.Domains {
		rules.domains[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	for _, tld := range cfg.TLDs {
		rules.tlds[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tld), "."))] = struct{}{}
	}
	for _, p := range cfg.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("invalid blocklist pattern %q: %w", p, err)
		}
		rules.patterns = append(rules.patterns, re)
	}

	if cfg.File != "" {
		if err := loadDomainFile(cfg.File, rules.domains); err != nil {
			return err
		}
	}

	b.rules.Store(rules)
	log.Info().
		Int("domains", len(rules.domains)).
		Int("tlds", len(rules.tlds)).
		Int("patterns", len(rules.patterns)).
		Msg("Blocklist loaded")
	return nil
}

// IsBlocked reports whether a URL must be rejected. host is the lowercased
// hostname of the already-parsed URL. IP-literal hosts are always rejected,
// independent of the configured rules.
func (b *Blocklist) IsBlocked(rawURL, host string) bool {
	rules := b.rules.Load()
	if rules == nil {
		return false
	}

	for _, re := range rules.patterns {
		if re.MatchString(rawURL) {
			return true
		}
	}

	// IP literals are never allowed as redirect targets
	if ip := net.ParseIP(host); ip != nil {
		return true
	}

	if rules.blockPrivate && isPrivateHost(host) {
		return true
	}

	// Exact domain and parent-domain matches
	parts := strings.Split(host, ".")
	for i := 0; i < len(parts); i++ {
		candidate := strings.Join(parts[i:], ".")
		if _, ok := rules.domains[candidate]; ok {
			return true
		}
	}

	if len(parts) > 1 {
		if _, ok := rules.tlds[parts[len(parts)-1]]; ok {
			return true
		}
	}

	return false
}

func isPrivateHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") ||
		strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".internal") {
		return true
	}
	return false
}

func loadDomainFile(path string, domains map[string]struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("Blocklist file not found, skipping")
			return nil
		}
		return fmt.Errorf("failed to open blocklist file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains[strings.ToLower(line)] = struct{}{}
	}
	return scanner.Err()
}
