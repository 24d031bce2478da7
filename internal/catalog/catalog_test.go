package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code    string
		prefix  string
		wantErr bool
	}{
		{code: "CABINET", prefix: "CAB"},
		{code: "TABLET_10_NEW", prefix: "T10N"},
		{code: "TABLET_8_NEW", prefix: "T8N"},
		{code: "TABLET_MIXED_USED", prefix: "TMU"},
		{code: "REMOTE_KIT", prefix: "REM"},
		{code: "COMPUTER_EQUIPMENT", prefix: "COMP"},
		{code: "TOASTER", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Lookup(tt.code)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidItemType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, got.Prefix)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestLookupByName(t *testing.T) {
	got, ok := LookupByName("Charging Cabinet")
	require.True(t, ok)
	assert.Equal(t, "CABINET", got.Code)

	_, ok = LookupByName("Unknown Thing")
	assert.False(t, ok)
}

func TestAllOrdered(t *testing.T) {
	types := All()
	require.Len(t, types, 6)
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1].Code, types[i].Code)
	}
}

func TestFolderName(t *testing.T) {
	tmu, err := Lookup("TABLET_MIXED_USED")
	require.NoError(t, err)
	assert.Equal(t, "Mixed 8_10 Tablet (Used Returns)", tmu.FolderName())

	cab, err := Lookup("CABINET")
	require.NoError(t, err)
	assert.Equal(t, "Charging Cabinet", cab.FolderName())
}

func TestRequirements(t *testing.T) {
	cab, _ := Lookup("CABINET")
	assert.Equal(t, "Label Removal, Photo Evidence", cab.Requirements())

	tmu, _ := Lookup("TABLET_MIXED_USED")
	assert.Equal(t, "Data Wipe, Photo Evidence", tmu.Requirements())
}

func TestValidCondition(t *testing.T) {
	assert.True(t, ValidCondition("New/Sealed"))
	assert.True(t, ValidCondition("For Parts"))
	assert.False(t, ValidCondition("Mint"))
}
