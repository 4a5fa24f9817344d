package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHasCode(t *testing.T) {
	err := NewInvalidCredentials()
	if !HasCode(err, CodeInvalidCredentials) {
		t.Fatal("expected code match")
	}
	if HasCode(err, CodeForbidden) {
		t.Fatal("unexpected code match")
	}
	if HasCode(errors.New("plain"), CodeInternal) {
		t.Fatal("plain error has no code")
	}

	wrapped := fmt.Errorf("handler: %w", NewForbidden("nope"))
	if !HasCode(wrapped, CodeForbidden) {
		t.Fatal("expected code match through wrapping")
	}
}

func TestToDomainError(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil in, nil out")
	}

	de := ToDomainError(NewDuplicateIdentifier("email"))
	if de.Code != CodeDuplicateIdentifier || de.HTTPStatus != http.StatusConflict {
		t.Fatalf("passthrough lost fields: %+v", de)
	}

	de = ToDomainError(errors.New("boom"))
	if de.Code != CodeInternal || de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("generic error should map to internal: %+v", de)
	}
	if !errors.Is(de, de.Err) {
		t.Fatal("cause must stay unwrappable")
	}
}

func TestCorruptDigestUnwraps(t *testing.T) {
	cause := errors.New("digest truncated")
	err := NewCorruptDigest(cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if !HasCode(err, CodeCorruptDigest) {
		t.Fatal("expected corrupt digest code")
	}
}
