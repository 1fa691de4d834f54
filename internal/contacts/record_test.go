package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneStrings(r *Record) []string {
	out := make([]string, 0)
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func Test_Record_New(t *testing.T) {
	r := NewRecord("John")

	assert.Equal(t, "John", r.Name())
	assert.Empty(t, r.Phones())
	_, ok := r.Birthday()
	assert.False(t, ok)
}

func Test_Record_AddPhone(t *testing.T) {
	r := NewRecord("John")

	require.NoError(t, r.AddPhone("1112223333"))
	require.NoError(t, r.AddPhone("1112223333"))
	require.NoError(t, r.AddPhone("4445556666"))

	assert.Equal(t, []string{"1112223333", "1112223333", "4445556666"}, phoneStrings(r))

	var verr *ValidationError
	require.ErrorAs(t, r.AddPhone("12"), &verr)
	assert.Len(t, r.Phones(), 3)
}

func Test_Record_EditPhone(t *testing.T) {
	t.Run("replaces the old number", func(t *testing.T) {
		r := NewRecord("John")
		require.NoError(t, r.AddPhone("1112223333"))

		require.NoError(t, r.EditPhone("1112223333", "4445556666"))

		assert.Equal(t, []string{"4445556666"}, phoneStrings(r))
	})

	t.Run("old number absent", func(t *testing.T) {
		r := NewRecord("John")
		require.NoError(t, r.AddPhone("1112223333"))

		err := r.EditPhone("9999999999", "4445556666")

		var nerr *NotFoundError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, []string{"1112223333"}, phoneStrings(r))
	})

	t.Run("invalid new number leaves state unchanged", func(t *testing.T) {
		r := NewRecord("John")
		require.NoError(t, r.AddPhone("1112223333"))

		err := r.EditPhone("1112223333", "bad")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"1112223333"}, phoneStrings(r))
	})
}

func Test_Record_RemovePhone(t *testing.T) {
	r := NewRecord("John")
	require.NoError(t, r.AddPhone("1112223333"))
	require.NoError(t, r.AddPhone("4445556666"))
	require.NoError(t, r.AddPhone("1112223333"))

	assert.False(t, r.RemovePhone("9999999999"))
	assert.Equal(t, []string{"1112223333", "4445556666", "1112223333"}, phoneStrings(r))

	assert.True(t, r.RemovePhone("1112223333"))
	assert.Equal(t, []string{"4445556666", "1112223333"}, phoneStrings(r))
}

func Test_Record_FindPhone(t *testing.T) {
	r := NewRecord("John")
	require.NoError(t, r.AddPhone("1112223333"))

	phone, ok := r.FindPhone("1112223333")
	assert.True(t, ok)
	assert.Equal(t, "1112223333", phone.String())

	_, ok = r.FindPhone("4445556666")
	assert.False(t, ok)
}

func Test_Record_AddBirthday(t *testing.T) {
	r := NewRecord("John")

	require.NoError(t, r.AddBirthday("24.08.1991"))
	require.NoError(t, r.AddBirthday("25.08.1991"))

	birthday, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "25.08.1991", birthday.String())

	var verr *ValidationError
	require.ErrorAs(t, r.AddBirthday("31.02.2020"), &verr)
	birthday, _ = r.Birthday()
	assert.Equal(t, "25.08.1991", birthday.String())
}

func Test_Record_String(t *testing.T) {
	r := NewRecord("John")
	assert.Equal(t, "Contact name: John, phones: ", r.String())

	require.NoError(t, r.AddPhone("1112223333"))
	require.NoError(t, r.AddPhone("4445556666"))
	assert.Equal(t, "Contact name: John, phones: 1112223333; 4445556666", r.String())
}

func Test_Record_PhonesReturnsCopy(t *testing.T) {
	r := NewRecord("John")
	require.NoError(t, r.AddPhone("1112223333"))

	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}

	assert.Equal(t, []string{"1112223333"}, phoneStrings(r))
}
