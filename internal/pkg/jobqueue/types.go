package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypeMailDelivery      JobType = "mail_delivery"
	JobTypeProviderSync      JobType = "provider_sync"
	JobTypeArtworkProcessing JobType = "artwork_processing"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// MailDeliveryJobPayload contains the payload for outbound mail jobs
type MailDeliveryJobPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// ToMap converts the payload to a map for storage
func (p MailDeliveryJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"to":       p.To,
		"subject":  p.Subject,
		"body":     p.Body,
		"reply_to": p.ReplyTo,
	}
}

// MailDeliveryJobPayloadFromMap creates a payload from a map
func MailDeliveryJobPayloadFromMap(data map[string]interface{}) (*MailDeliveryJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload MailDeliveryJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// ProviderSyncJobPayload contains the payload for payment provider catalog
// sync jobs: pushing a product and its price to the provider after a save
type ProviderSyncJobPayload struct {
	ProductID string `json:"product_id"`
}

// ToMap converts the payload to a map for storage
func (p ProviderSyncJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"product_id": p.ProductID,
	}
}

// ProviderSyncJobPayloadFromMap creates a payload from a map
func ProviderSyncJobPayloadFromMap(data map[string]interface{}) (*ProviderSyncJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload ProviderSyncJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// ArtworkJobPayload contains the payload for artwork processing jobs
type ArtworkJobPayload struct {
	ProductID string `json:"product_id"`
	FilePath  string `json:"file_path"`
	OutputDir string `json:"output_dir"`
}

// ToMap converts the payload to a map for storage
func (p ArtworkJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"product_id": p.ProductID,
		"file_path":  p.FilePath,
		"output_dir": p.OutputDir,
	}
}

// ArtworkJobPayloadFromMap creates a payload from a map
func ArtworkJobPayloadFromMap(data map[string]interface{}) (*ArtworkJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload ArtworkJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// IsRetryable checks if the job can be retried
func (j *Job) IsRetryable() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// MarkAsProcessing updates the job status to processing
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.UpdatedAt = now
	j.ProcessedAt = &now
}

// MarkAsCompleted updates the job status to completed
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.UpdatedAt = now
	j.CompletedAt = &now
	j.ErrorMsg = ""
}

// MarkAsFailed updates the job status to failed
func (j *Job) MarkAsFailed(errorMsg string) {
	j.Status = JobStatusFailed
	j.UpdatedAt = time.Now()
	j.ErrorMsg = errorMsg
	j.RetryCount++
}

// MarkAsRetrying updates the job status to retrying
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}
