package cosmos

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches a 404 response error", func(t *testing.T) {
		err := &azcore.ResponseError{StatusCode: http.StatusNotFound}
		if !IsNotFound(err) {
			t.Fatal("expected IsNotFound to be true for a 404")
		}
	})

	t.Run("matches a wrapped 404", func(t *testing.T) {
		err := fmt.Errorf("read item: %w", &azcore.ResponseError{StatusCode: http.StatusNotFound})
		if !IsNotFound(err) {
			t.Fatal("expected IsNotFound to unwrap to the 404")
		}
	})

	t.Run("rejects other status codes", func(t *testing.T) {
		err := &azcore.ResponseError{StatusCode: http.StatusConflict}
		if IsNotFound(err) {
			t.Fatal("expected IsNotFound to be false for a 409")
		}
	})

	t.Run("rejects plain errors", func(t *testing.T) {
		if IsNotFound(errors.New("boom")) {
			t.Fatal("expected IsNotFound to be false for a non-response error")
		}
		if IsNotFound(nil) {
			t.Fatal("expected IsNotFound to be false for nil")
		}
	})
}

func TestIsConflict(t *testing.T) {
	t.Run("matches a 409 response error", func(t *testing.T) {
		err := &azcore.ResponseError{StatusCode: http.StatusConflict}
		if !IsConflict(err) {
			t.Fatal("expected IsConflict to be true for a 409")
		}
	})

	t.Run("matches a wrapped 409", func(t *testing.T) {
		err := fmt.Errorf("create item: %w", &azcore.ResponseError{StatusCode: http.StatusConflict})
		if !IsConflict(err) {
			t.Fatal("expected IsConflict to unwrap to the 409")
		}
	})

	t.Run("rejects other status codes", func(t *testing.T) {
		err := &azcore.ResponseError{StatusCode: http.StatusNotFound}
		if IsConflict(err) {
			t.Fatal("expected IsConflict to be false for a 404")
		}
	})
}
