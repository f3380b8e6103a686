package validation

import (
	"errors"
	"testing"
)

type sample struct {
	Username string   `json:"username" validate:"required"`
	Stock    int      `json:"stock" validate:"gte=0"`
	IDs      []string `json:"ids" validate:"required,min=1"`
}

func TestDescribe(t *testing.T) {
	err := New().Struct(sample{Stock: -1, IDs: []string{}})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	got := Describe(err).Error()
	want := "username is required; stock must be greater than or equal to 0; ids must contain at least 1 item(s)"
	if got != want {
		t.Fatalf("unexpected message:\n got: %s\nwant: %s", got, want)
	}
}

func TestDescribe_UnmappedTag(t *testing.T) {
	type method struct {
		PaymentMethod string `json:"paymentMethod" validate:"oneof=Paid COD"`
	}

	err := New().Struct(method{PaymentMethod: "Pending"})
	if got := Describe(err).Error(); got != "paymentmethod failed validation (oneof)" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestDescribe_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("plain")
	if Describe(plain) != plain {
		t.Fatalf("expected non-validation error to be returned unchanged")
	}
}
