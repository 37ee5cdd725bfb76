// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bangs/models"
)

func TestContextKeyString(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	want := &models.User{UserID: 42}
	ctx := WithUser(context.Background(), want)

	user, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user != want {
		t.Errorf("expected the stored user, got %+v", user)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, ok := GetUserFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context")
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestGetUserFromContext_NilUser(t *testing.T) {
	ctx := WithUser(context.Background(), nil)

	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok=false for a nil user")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, int64(42))

	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetUserFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), &models.User{UserID: 1})

	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok=false for a different key")
	}
}
