// Package utils provides general-purpose helper utilities
// used across the STA services. Includes tools for working with context,
// type-safe keys, password hashing, HTTP response writing, JWT token
// generation and validation, and booking reference generation.
package utils

import (
	"context"
	"strconv"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the context. Set by the auth middleware after JWT validation.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetOwnerIDFromContext retrieves the user identifier from the context in
// the string form used as the owner id of bookings and trips.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(userID, 10), true
}

// BearerTokenCtxKey is the key used to store the raw bearer token of the
// current request. The trips service forwards it when verifying booking
// references against the flights and hotels services.
var BearerTokenCtxKey = contextKey("bearerToken")

// GetBearerTokenFromContext retrieves the raw bearer token stored by the
// auth middleware.
func GetBearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(BearerTokenCtxKey).(string)
	return token, ok
}
