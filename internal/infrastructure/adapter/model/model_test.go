package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gormTag(t *testing.T, model any, field string) string {
	t.Helper()
	structField, ok := reflect.TypeOf(model).FieldByName(field)
	assert.True(t, ok, "field %s not found", field)
	return structField.Tag.Get("gorm")
}

func TestOwnershipConstraints(t *testing.T) {
	t.Run("should cascade user deletion to categories and transactions", func(t *testing.T) {
		assert.Contains(t, gormTag(t, Category{}, "User"), "constraint:OnDelete:CASCADE")
		assert.Contains(t, gormTag(t, Transaction{}, "User"), "constraint:OnDelete:CASCADE")
	})

	t.Run("should keep category names unique per user only", func(t *testing.T) {
		assert.Contains(t, gormTag(t, Category{}, "Name"), "uniqueIndex:idx_user_category_name")
		assert.Contains(t, gormTag(t, Category{}, "UserID"), "uniqueIndex:idx_user_category_name")
	})
}
