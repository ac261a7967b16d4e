package sql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stateErr string

func (e stateErr) Error() string    { return "pq: " + string(e) }
func (e stateErr) SQLState() string { return string(e) }

type numberErr uint16

func (e numberErr) Error() string  { return fmt.Sprintf("mysql error %d", uint16(e)) }
func (e numberErr) Number() uint16 { return uint16(e) }

func TestConstraintErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                    string
		err                     error
		unique, foreignKey, chk bool
	}{
		{name: "nil"},
		{name: "plain", err: errors.New("connection refused")},
		{name: "pg_unique", err: stateErr("23505"), unique: true},
		{name: "pg_fk", err: stateErr("23503"), foreignKey: true},
		{name: "pg_check", err: stateErr("23514"), chk: true},
		{name: "mysql_unique", err: numberErr(1062), unique: true},
		{name: "mysql_fk_parent", err: numberErr(1451), foreignKey: true},
		{name: "mysql_fk_child", err: numberErr(1452), foreignKey: true},
		{name: "mysql_check", err: numberErr(3819), chk: true},
		{name: "sqlite_unique", err: errors.New("constraint failed: UNIQUE constraint failed: users.id (2067)"), unique: true},
		{name: "sqlite_fk", err: errors.New("FOREIGN KEY constraint failed"), foreignKey: true},
		{name: "wrapped", err: fmt.Errorf("dialect/sql: exec: %w", stateErr("23505")), unique: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.unique, IsUniqueConstraintError(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyConstraintError(tt.err))
			assert.Equal(t, tt.chk, IsCheckConstraintError(tt.err))
			assert.Equal(t, tt.unique || tt.foreignKey || tt.chk, IsConstraintError(tt.err))
		})
	}
}

func TestConstraintError(t *testing.T) {
	t.Parallel()
	cause := stateErr("23505")
	err := fmt.Errorf("seed: %w", &ConstraintError{Table: "users", Err: cause})
	assert.True(t, IsConstraintError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "seed: dialect/sql: constraint failed on users: pq: 23505", err.Error())
}
