package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil, ""))
	assert.False(t, IsUniqueViolation(errors.New("connection refused"), ""))

	pgStyle := errors.New(`ERROR: duplicate key value violates unique constraint "equipment_equipment_id_key" (SQLSTATE 23505)`)
	assert.True(t, IsUniqueViolation(pgStyle, ""))
	assert.True(t, IsUniqueViolation(pgStyle, "equipment_equipment_id_key"))

	sqliteStyle := errors.New("UNIQUE constraint failed: equipment.equipment_id")
	assert.True(t, IsUniqueViolation(sqliteStyle, ""))

	named := errors.New(`constraint "equipment_equipment_id_key" violated`)
	assert.True(t, IsUniqueViolation(named, "equipment_equipment_id_key"))
	assert.False(t, IsUniqueViolation(named, "some_other_key"))
}
