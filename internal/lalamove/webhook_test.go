package lalamove

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const webhookBody = `{"eventType":"ORDER_STATUS_CHANGED","data":{"order":{"orderId":"O1","status":"PICKED_UP"}}}`

func TestVerifyWebhookSignature(t *testing.T) {
	signature := "dbb78769cc2d888d76afc4075485bd729721267530949682d9cc18c7652f2b2c"

	require.True(t, VerifyWebhookSignature("webhook-secret", webhookBody, signature))
	require.False(t, VerifyWebhookSignature("wrong-secret", webhookBody, signature))
	require.False(t, VerifyWebhookSignature("webhook-secret", webhookBody+" ", signature))
	require.False(t, VerifyWebhookSignature("webhook-secret", webhookBody, "deadbeef"))
}

func TestVerifyWebhookSignatureRejectsEmptyInputs(t *testing.T) {
	require.False(t, VerifyWebhookSignature("", webhookBody, "anything"))
	require.False(t, VerifyWebhookSignature("webhook-secret", webhookBody, ""))
}
