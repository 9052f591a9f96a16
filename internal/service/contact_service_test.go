package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopefoundation/charity-backend/internal/db"
)

func TestContactValidationPrecedesInsert(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	cases := []ContactInput{
		{Email: "a@example.org", Message: "hi"},
		{Name: "Jane", Message: "hi"},
		{Name: "Jane", Email: "a@example.org"},
	}
	for _, input := range cases {
		_, err := svc.Create(input)
		require.ErrorIs(t, err, ErrContactFieldsMissing)
	}

	_, err := svc.Create(ContactInput{Name: "Jane", Email: "nope", Message: "hi"})
	require.ErrorIs(t, err, ErrEmailInvalid)

	var count int64
	require.NoError(t, gdb.Model(&db.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContactCreateAndTriage(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	contact, err := svc.Create(ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.org",
		Subject: "Volunteering",
		Message: "I would like to help.",
	})
	require.NoError(t, err)
	assert.Equal(t, db.ContactStatusNew, contact.Status)

	require.ErrorIs(t, svc.UpdateStatus(9999, "read"), ErrContactNotFound)
	require.NoError(t, svc.UpdateStatus(contact.ID, "read"))

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "read", items[0].Status)
}
