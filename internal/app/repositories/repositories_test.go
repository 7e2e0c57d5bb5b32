package repositories

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchAssignments(t *testing.T) {
	allowed := map[string]string{
		"name":       "name",
		"email":      "email",
		"student_id": "student_id",
	}

	t.Run("keeps only known keys", func(t *testing.T) {
		fields := map[string]interface{}{
			"name":  "New Name",
			"email": "new@school.edu.tr",
			"id":    99,
			"role":  "admin",
		}

		assignments := patchAssignments(fields, allowed)
		assert.Equal(t, map[string]interface{}{
			"name":  "New Name",
			"email": "new@school.edu.tr",
		}, assignments)
	})

	t.Run("unknown keys only yields an empty map", func(t *testing.T) {
		fields := map[string]interface{}{"id": 1, "nonsense": true}
		assert.Empty(t, patchAssignments(fields, allowed))
	})

	t.Run("empty input yields an empty map", func(t *testing.T) {
		assert.Empty(t, patchAssignments(map[string]interface{}{}, allowed))
	})

	t.Run("nil values survive for nullable columns", func(t *testing.T) {
		assignments := patchAssignments(map[string]interface{}{"name": nil}, allowed)
		assert.Len(t, assignments, 1)
		assert.Nil(t, assignments["name"])
	})
}

func TestToInt64(t *testing.T) {
	t.Run("accepts int64", func(t *testing.T) {
		v, ok := toInt64(int64(7))
		assert.True(t, ok)
		assert.Equal(t, int64(7), v)
	})

	t.Run("accepts int", func(t *testing.T) {
		v, ok := toInt64(3)
		assert.True(t, ok)
		assert.Equal(t, int64(3), v)
	})

	t.Run("accepts integral float64 from JSON decoding", func(t *testing.T) {
		v, ok := toInt64(float64(42))
		assert.True(t, ok)
		assert.Equal(t, int64(42), v)
	})

	t.Run("rejects fractional float64", func(t *testing.T) {
		_, ok := toInt64(4.2)
		assert.False(t, ok)
	})

	t.Run("accepts json.Number", func(t *testing.T) {
		v, ok := toInt64(json.Number("15"))
		assert.True(t, ok)
		assert.Equal(t, int64(15), v)
	})

	t.Run("rejects fractional json.Number", func(t *testing.T) {
		_, ok := toInt64(json.Number("1.5"))
		assert.False(t, ok)
	})

	t.Run("rejects strings", func(t *testing.T) {
		_, ok := toInt64("3")
		assert.False(t, ok)
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, ok := toInt64(nil)
		assert.False(t, ok)
	})
}

func TestPatchColumnMaps(t *testing.T) {
	t.Run("user patch columns cover the mutable fields", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"name":       "name",
			"email":      "email",
			"student_id": "student_id",
		}, userPatchColumns)
	})

	t.Run("project patch columns cover the mutable fields", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"name":        "name",
			"description": "description",
			"owner_id":    "owner_id",
		}, projectPatchColumns)
	})
}
