package jobs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	// High priority queue
	TypeReferralRecord = "referral:record"

	// Medium priority queue
	TypeEmailAffiliateWelcome    = "email:affiliate_welcome"
	TypeEmailWithdrawalRequested = "email:withdrawal_requested"
	TypeEmailWithdrawalStatus    = "email:withdrawal_status"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Queues is the asynq queue priority table used by the worker process.
var Queues = map[string]int{
	QueueHigh:   6,
	QueueMedium: 3,
	QueueLow:    1,
}

const referralRecordMaxRetry = 10

// ReferralRecordJobPayload carries a confirmed payment to the referral recorder
type ReferralRecordJobPayload struct {
	TransactionRef       string   `json:"transaction_ref"`
	AffiliateUsername    string   `json:"affiliate_username,omitempty"`
	PlanType             string   `json:"plan_type"`
	DiscountAmount       int64    `json:"discount_amount"`
	ReferredUserID       string   `json:"referred_user_id,omitempty"`
	ReferredBusinessID   string   `json:"referred_business_id,omitempty"`
	ReferredBusinessName string   `json:"referred_business_name,omitempty"`
	ReferredContacts     []string `json:"referred_contacts,omitempty"`
}

// NewReferralRecordTask creates a referral recording task. The task ID is
// derived from the transaction reference so a payment is queued at most once
// while its task is retained.
func NewReferralRecordTask(payload ReferralRecordJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReferralRecord, data,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(referralRecordMaxRetry),
		asynq.TaskID("referral:"+payload.TransactionRef),
	), nil
}

// Email kinds
const (
	EmailKindAffiliateWelcome    = "affiliate_welcome"
	EmailKindWithdrawalRequested = "withdrawal_requested"
	EmailKindWithdrawalStatus    = "withdrawal_status"
)

// EmailJobPayload represents an affiliate notification email job
type EmailJobPayload struct {
	Kind         string     `json:"kind"`
	AffiliateID  uuid.UUID  `json:"affiliate_id"`
	WithdrawalID *uuid.UUID `json:"withdrawal_id,omitempty"`
}

// NewEmailTask creates a new email task
func NewEmailTask(payload EmailJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var taskType string
	switch payload.Kind {
	case EmailKindWithdrawalRequested:
		taskType = TypeEmailWithdrawalRequested
	case EmailKindWithdrawalStatus:
		taskType = TypeEmailWithdrawalStatus
	default:
		taskType = TypeEmailAffiliateWelcome
	}

	return asynq.NewTask(taskType, data, asynq.Queue(QueueMedium), asynq.MaxRetry(5)), nil
}
