package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolder(t *testing.T) {
	svc := NewFolderService(newMemFolderStore())

	folder, err := svc.Create(1, "Biology")
	require.NoError(t, err)
	assert.Equal(t, "Biology", folder.Name)
	assert.NotZero(t, folder.ID)
}

func TestCreateFolderRejectsBlankName(t *testing.T) {
	svc := NewFolderService(newMemFolderStore())

	_, err := svc.Create(1, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListFoldersPartitionedByUser(t *testing.T) {
	store := newMemFolderStore()
	svc := NewFolderService(store)

	_, err := svc.Create(1, "Mine")
	require.NoError(t, err)
	_, err = svc.Create(2, "Theirs")
	require.NoError(t, err)

	folders, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Mine", folders[0].Name)
}
