package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

func TestMemory_PutGetDelete(t *testing.T) {
	m := storage.NewMemory()

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.False(t, m.Exists("missing"))

	require.NoError(t, m.Put("sessions/abc", []byte("hello")))
	assert.True(t, m.Exists("sessions/abc"))

	got, err := m.Get("sessions/abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	require.NoError(t, m.Delete("sessions/abc"))
	assert.False(t, m.Exists("sessions/abc"))
	assert.NoError(t, m.Delete("sessions/abc"), "deleting an absent blob is not an error")
}

func TestMemory_CopiesOnReadAndWrite(t *testing.T) {
	m := storage.NewMemory()

	in := []byte("original")
	require.NoError(t, m.Put("blob", in))
	in[0] = 'X'

	got, err := m.Get("blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := m.Get("blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemory_List(t *testing.T) {
	m := storage.NewMemory()
	require.NoError(t, m.Put("store", nil))
	require.NoError(t, m.Put("store/a", nil))
	require.NoError(t, m.Put("store/b", nil))
	require.NoError(t, m.Put("other", nil))

	names, err := m.List("store")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"store", "store/a", "store/b"}, names)

	all, err := m.List("")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
