package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
)

// VerifyPerfectPayWebhookToken checks the shared-secret token Perfect Pay
// includes in every webhook body. Comparison runs over SHA-256 digests so it
// is constant-time regardless of token length.
func VerifyPerfectPayWebhookToken(payloadToken, configuredSecret string) bool {
	token := strings.TrimSpace(payloadToken)
	secret := strings.TrimSpace(configuredSecret)
	if token == "" || secret == "" {
		return false
	}

	tokenSum := sha256.Sum256([]byte(token))
	secretSum := sha256.Sum256([]byte(secret))
	return hmac.Equal(tokenSum[:], secretSum[:])
}
