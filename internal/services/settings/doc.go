// Package settings reads and updates app preferences.
package settings
