package jobqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailDeliveryJobPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	payload := MailDeliveryJobPayload{
		To:      "user@example.com",
		Subject: "Your code is ready",
		Body:    "<p>hello</p>",
		ReplyTo: "support@example.com",
	}

	restored, err := MailDeliveryJobPayloadFromMap(payload.ToMap())
	require.NoError(t, err)
	assert.Equal(t, payload, *restored)
}

func TestProviderSyncJobPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	payload := ProviderSyncJobPayload{ProductID: "2b1f9e60-7b38-4f0f-9a64-19c0ffee0001"}
	restored, err := ProviderSyncJobPayloadFromMap(payload.ToMap())
	require.NoError(t, err)
	assert.Equal(t, payload.ProductID, restored.ProductID)
}

func TestJobLifecycleTransitions(t *testing.T) {
	t.Parallel()

	job := &Job{
		ID:         "j1",
		Type:       JobTypeMailDelivery,
		Status:     JobStatusPending,
		MaxRetries: 2,
		CreatedAt:  time.Now(),
	}

	job.MarkAsProcessing()
	assert.Equal(t, JobStatusProcessing, job.Status)
	require.NotNil(t, job.ProcessedAt)

	job.MarkAsFailed("smtp timeout")
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, 1, job.RetryCount)
	assert.True(t, job.IsRetryable())

	job.MarkAsFailed("smtp timeout")
	assert.Equal(t, 2, job.RetryCount)
	assert.False(t, job.IsRetryable(), "retries exhausted")

	job.MarkAsCompleted()
	assert.Equal(t, JobStatusCompleted, job.Status)
	assert.Empty(t, job.ErrorMsg)
	require.NotNil(t, job.CompletedAt)
}

func TestIsRetryableOnlyWhenFailed(t *testing.T) {
	t.Parallel()

	job := &Job{Status: JobStatusProcessing, RetryCount: 0, MaxRetries: 3}
	assert.False(t, job.IsRetryable())

	job.Status = JobStatusFailed
	assert.True(t, job.IsRetryable())
}
