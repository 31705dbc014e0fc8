package testutil

import (
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"os"
	"path"
	"testing"
)

func RequireEqualHexBytes(t *testing.T, exp string, act []byte) {
	require.Equal(t, exp, hex.EncodeToString(act))
}

func ReadFixture(t *testing.T, name string) []byte {
	data, err := os.ReadFile(path.Join("testdata", name))
	require.NoError(t, err)
	return data
}
