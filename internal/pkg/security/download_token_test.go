package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateDownloadToken("user-1", "product-1", time.Minute, "secret")
	require.NoError(t, err)

	claims, err := VerifyDownloadToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "product-1", claims.ProductID)
}

func TestDownloadTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateDownloadToken("user-1", "product-1", time.Minute, "secret")
	require.NoError(t, err)

	_, err = VerifyDownloadToken(token, "other-secret")
	assert.Error(t, err)
}

func TestDownloadTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	token, err := GenerateDownloadToken("user-1", "product-1", -time.Minute, "secret")
	require.NoError(t, err)

	_, err = VerifyDownloadToken(token, "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestDownloadTokenRejectsTampering(t *testing.T) {
	t.Parallel()

	token, err := GenerateDownloadToken("user-1", "product-1", time.Minute, "secret")
	require.NoError(t, err)

	parts := strings.SplitN(token, ".", 2)
	require.Len(t, parts, 2)

	other, err := GenerateDownloadToken("user-2", "product-1", time.Minute, "secret")
	require.NoError(t, err)
	otherPayload := strings.SplitN(other, ".", 2)[0]

	_, err = VerifyDownloadToken(otherPayload+"."+parts[1], "secret")
	assert.Error(t, err)

	_, err = VerifyDownloadToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestDownloadTokenRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := GenerateDownloadToken("user-1", "product-1", time.Minute, "")
	assert.Error(t, err)

	_, err = VerifyDownloadToken("x.y", "")
	assert.Error(t, err)
}
