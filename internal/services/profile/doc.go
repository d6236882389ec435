// Package profile loads the signed-in user's profile and ends the session.
package profile
