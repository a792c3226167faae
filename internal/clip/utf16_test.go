package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUTF16(t *testing.T) {
	b, err := encodeUTF16("A€")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00, 0xAC, 0x20, 0x00, 0x00}, b)
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"terminated", []byte{0x41, 0x00, 0x00, 0x00}, "A"},
		{"unterminated", []byte{0x41, 0x00, 0x42, 0x00}, "AB"},
		{"odd trailing byte", []byte{0x41, 0x00, 0x00}, "A"},
		{"only terminator", []byte{0x00, 0x00}, ""},
		{"surrogate pair", []byte{0x3D, 0xD8, 0x00, 0xDE, 0x00, 0x00}, "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeUTF16(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
