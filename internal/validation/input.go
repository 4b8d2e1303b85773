// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,30}$`)

// ValidateUsername validates username format.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-30 characters and contain only letters, numbers, underscores, and dots")
	}
	return nil
}

// ValidateImageURL checks that an image reference is an absolute http(s) URL
// or a storage path issued by the blob storage collaborator.
func ValidateImageURL(ref string) error {
	if ref == "" {
		return fmt.Errorf("image reference is required")
	}
	if strings.HasPrefix(ref, "/") {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("image reference must be an absolute http(s) URL or a storage path")
	}
	return nil
}

// ValidateTags checks a free-form tag set: every tag non-blank, within the
// length and count limits.
func ValidateTags(tags []string, max int) error {
	if len(tags) > max {
		return fmt.Errorf("too many tags (max %d)", max)
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags must be non-empty strings")
		}
		if len(tag) > 60 {
			return fmt.Errorf("tag %q exceeds 60 characters", tag)
		}
	}
	return nil
}
