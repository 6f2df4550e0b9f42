package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTopLevelFields(t *testing.T) {
	p := &TeacherPayload{
		Code:          " GV001 ",
		Name:          "Alice",
		Email:         "  A@X.Com ",
		Phone:         "0901234567",
		Address:       "12 Main St",
		Qualification: "MSc",
		Major:         "Mathematics",
		Status:        "inactive",
	}
	in, err := p.normalize()
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", in.Email)
	assert.Equal(t, "Alice", in.Name)
	assert.Equal(t, "GV001", in.Code)
	assert.Equal(t, "MSc", in.Qualification)
	assert.Equal(t, "Mathematics", in.Major)
	assert.Equal(t, StatusInactive, in.Status)
}

func TestNormalizeNestedShapes(t *testing.T) {
	p := &TeacherPayload{
		User: &UserPayload{
			FullName: "Bob Tran",
			Email:    "bob@x.com",
			Phone:    "0907654321",
			Address:  "34 Side St",
		},
		Education: &EducationPayload{Degree: "PhD", Major: "Physics"},
	}
	in, err := p.normalize()
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", in.Email)
	assert.Equal(t, "Bob Tran", in.Name)
	assert.Equal(t, "0907654321", in.Phone)
	assert.Equal(t, "34 Side St", in.Address)
	assert.Equal(t, "PhD", in.Qualification)
	assert.Equal(t, "Physics", in.Major)
	assert.Equal(t, StatusActive, in.Status)
}

func TestNormalizeTopLevelWinsOverNested(t *testing.T) {
	p := &TeacherPayload{
		Email:         "top@x.com",
		Qualification: "BSc",
		User:          &UserPayload{Email: "nested@x.com"},
		Education:     &EducationPayload{Degree: "PhD"},
	}
	in, err := p.normalize()
	require.NoError(t, err)
	assert.Equal(t, "top@x.com", in.Email)
	assert.Equal(t, "BSc", in.Qualification)
}

func TestNormalizeEmailRequired(t *testing.T) {
	_, err := (&TeacherPayload{Name: "No Mail"}).normalize()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")

	_, err = (&TeacherPayload{Email: "not-an-email"}).normalize()
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
}

func TestNormalizeNameFallsBackToEmailLocalPart(t *testing.T) {
	in, err := (&TeacherPayload{Email: "carol.d@x.com"}).normalize()
	require.NoError(t, err)
	assert.Equal(t, "carol.d", in.Name)
}

func TestNormalizeRejectsUnknownStatus(t *testing.T) {
	_, err := (&TeacherPayload{Email: "a@x.com", Status: "retired"}).normalize()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}

func TestNormalizePositionRefs(t *testing.T) {
	raw := []any{
		"7",
		float64(3),
		map[string]any{"id": "12"},
		map[string]any{"_id": float64(9)},
		map[string]any{"code": "POS1"}, // no id, dropped
		"abc",                          // malformed, dropped
		float64(-1),                    // malformed, dropped
		"0",                            // malformed, dropped
		nil,                            // dropped
	}
	assert.Equal(t, []uint{7, 3, 12, 9}, normalizePositionRefs(raw))
	assert.Empty(t, normalizePositionRefs(nil))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, "raw=%q", raw)
	}
}
