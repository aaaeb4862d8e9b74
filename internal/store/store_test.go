package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Abhiraj235/GearGo/internal/model"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"00000000-0000-0000-0000-000000000001", true},
		{"", false},
		{"not-a-uuid", false},
		{"1234", false},
		{"00000000-0000-0000-0000-00000000000g", false},
	}
	for _, tt := range tests {
		if got := validID(tt.id); got != tt.want {
			t.Errorf("validID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestMapErr(t *testing.T) {
	if got := mapErr(nil); got != nil {
		t.Errorf("mapErr(nil) = %v, want nil", got)
	}
	if got := mapErr(pgx.ErrNoRows); !errors.Is(got, model.ErrNotFound) {
		t.Errorf("mapErr(ErrNoRows) = %v, want ErrNotFound", got)
	}
	if got := mapErr(&pgconn.PgError{Code: "23503"}); !errors.Is(got, model.ErrNotFound) {
		t.Errorf("mapErr(foreign key violation) = %v, want ErrNotFound", got)
	}
	if got := mapErr(&pgconn.PgError{Code: "22P02"}); !errors.Is(got, model.ErrNotFound) {
		t.Errorf("mapErr(invalid text representation) = %v, want ErrNotFound", got)
	}

	// anything else passes through untouched
	boom := errors.New("connection reset")
	if got := mapErr(boom); got != boom {
		t.Errorf("mapErr(%v) = %v, want the original error", boom, got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation not recognized")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation misread as unique violation")
	}
	if isUniqueViolation(errors.New("plain")) {
		t.Error("plain error misread as unique violation")
	}
}
