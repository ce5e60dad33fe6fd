// Package paths provides centralized path handling for wordstorm.
// It implements XDG Base Directory specification compliance for the
// configuration and log locations, and resolves the output artifact path.
package paths
