package wide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	require.Equal(t, []byte{'/', 0, 'a', 0}, Encode("/a"))
	require.Empty(t, Encode(""))
	// BMP characters take a single 16-bit unit
	require.Equal(t, []byte{0x54, 0x04}, Encode("є"))
}
