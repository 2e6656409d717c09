package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOtp(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		otp, err := GenerateOtp()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		for _, r := range otp {
			require.True(t, r >= '0' && r <= '9', "otp %q not numeric", otp)
		}
		seen[otp] = true
	}
	// 200 draws from a million values should not all collide
	require.Greater(t, len(seen), 1)
}
