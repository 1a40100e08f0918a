package logger

import (
	"regexp"
	"strings"
)

// Sensitive key patterns, matched case-insensitively.
var sensitiveKeyPatterns = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"secret",
	"github_token",
	"authorization",
	"auth",
	"credential",
	"private_key",
	"access_token",
}

// Sensitive value patterns.
var sensitiveValuePatterns = []*regexp.Regexp{
	// GitHub personal access tokens
	regexp.MustCompile(`^ghp_[A-Za-z0-9]{36,}$`),
	// GitHub app tokens
	regexp.MustCompile(`^ghs_[A-Za-z0-9]{36,}$`),
	// GitHub user access tokens
	regexp.MustCompile(`^ghu_[A-Za-z0-9]{36,}$`),
	// GitHub installation tokens
	regexp.MustCompile(`^ghi_[A-Za-z0-9]{36,}$`),
	// Fine-grained personal access tokens
	regexp.MustCompile(`^github_pat_[A-Za-z0-9_]{36,}$`),
	// Authorization headers
	regexp.MustCompile(`(?i)^Bearer\s+[A-Za-z0-9\-_\.]{20,}$`),
	regexp.MustCompile(`(?i)^token\s+[A-Za-z0-9\-_\.]{20,}$`),
}

const mask = "***MASKED***"

// SanitizeArgs masks sensitive information in log key-value pairs.
func SanitizeArgs(args ...interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}

	sanitized := make([]interface{}, len(args))
	copy(sanitized, args)

	for i := 0; i < len(sanitized)-1; i += 2 {
		if key, ok := sanitized[i].(string); ok {
			_, value := SanitizeKeyValue(key, sanitized[i+1])
			sanitized[i+1] = value
		}
	}
	return sanitized
}

// SanitizeKeyValue masks the value when either the key or the value looks
// sensitive.
func SanitizeKeyValue(key string, value interface{}) (string, interface{}) {
	if isSensitiveKey(key) {
		return key, mask
	}
	if isSensitiveValue(value) {
		return key, mask
	}
	return key, value
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if lowerKey == pattern ||
			strings.HasPrefix(lowerKey, pattern+"_") ||
			strings.HasSuffix(lowerKey, "_"+pattern) ||
			strings.Contains(lowerKey, "_"+pattern+"_") {
			return true
		}
	}
	return false
}

func isSensitiveValue(value interface{}) bool {
	str, ok := value.(string)
	if !ok || str == "" {
		return false
	}
	for _, pattern := range sensitiveValuePatterns {
		if pattern.MatchString(str) {
			return true
		}
	}
	return false
}
