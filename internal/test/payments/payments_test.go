package payments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pdfmerge-backend/internal/payments"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$3.99", payments.FormatAmount(399))
	assert.Equal(t, "$0.50", payments.FormatAmount(50))
	assert.Equal(t, "$10.00", payments.FormatAmount(1000))
	assert.Equal(t, "$0.00", payments.FormatAmount(0))
}

func TestVerifyWebhook_GarbageHeader(t *testing.T) {
	_, err := payments.VerifyWebhook([]byte(`{}`), "not-a-signature", "whsec_test")
	assert.Error(t, err)
}
