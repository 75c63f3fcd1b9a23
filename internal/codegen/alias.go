package codegen

import (
	"errors"
	"regexp"
	"strings"
)

// aliasPattern: must start with a letter or digit, then letters, digits,
// hyphens or underscores, 3-30 characters total.
var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{2,29}$`)

// reservedAliases are route names and operational paths that a custom alias
// must never shadow.
var reservedAliases = map[string]struct{}{
	"health": {}, "stats": {}, "shorten": {}, "links": {}, "api": {},
	"admin": {}, "docs": {}, "swagger": {}, "openapi": {},
	"login": {}, "logout": {}, "register": {}, "signup": {}, "signin": {},
	"auth": {}, "oauth": {}, "user": {}, "users": {}, "account": {},
	"profile": {}, "settings": {}, "dashboard": {},
	"static": {}, "assets": {}, "images": {}, "css": {}, "js": {},
	"favicon.ico": {}, "robots.txt": {},
	"root": {}, "administrator": {}, "system": {}, "config": {}, "env": {},
	".env": {}, ".git": {}, ".well-known": {},
}

// ValidateAlias checks a user-supplied custom alias. A nil return means the
// alias is safe to use as a short code.
func ValidateAlias(alias string) error {
	if len(alias) < 3 {
		return errors.New("alias must be at least 3 characters")
	}
	if len(alias) > 30 {
		return errors.New("alias must be at most 30 characters")
	}
	if strings.Contains(alias, "..") || strings.Contains(alias, "/") || strings.Contains(alias, "\\") {
		return errors.New("alias must not contain path separators")
	}
	if strings.Contains(alias, "%") {
		return errors.New("alias must not contain encoded characters")
	}
	if !aliasPattern.MatchString(alias) {
		return errors.New("alias must start with a letter or digit and contain only letters, digits, hyphens and underscores")
	}
	if _, ok := reservedAliases[strings.ToLower(alias)]; ok {
		return errors.New("alias is a reserved word")
	}
	return nil
}
