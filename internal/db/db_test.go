package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		fk     bool
		unique bool
		check  bool
	}{
		{"foreign key", &pq.Error{Code: "23503"}, true, false, false},
		{"unique", &pq.Error{Code: "23505"}, false, true, false},
		{"check", &pq.Error{Code: "23514"}, false, false, true},
		{"wrapped foreign key", fmt.Errorf("delete gym: %w", &pq.Error{Code: "23503"}), true, false, false},
		{"plain error", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fk, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.check, IsCheckViolation(tt.err))
		})
	}
}
