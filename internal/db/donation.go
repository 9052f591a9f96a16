package db

import "time"

// DonationStatusReceived is the state every new donation starts in. Further
// states are operator-defined and stored verbatim.
const DonationStatusReceived = "received"

// Donation is a public donation submission. Rows are created by the public
// form and never deleted; only the status is mutated by an operator.
type Donation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DonorName     string    `gorm:"size:255;not null" json:"donor_name"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Cause         string    `gorm:"size:255" json:"cause,omitempty"`
	Email         string    `gorm:"size:100" json:"email,omitempty"`
	Phone         string    `gorm:"size:20" json:"phone,omitempty"`
	Message       string    `gorm:"type:text" json:"message,omitempty"`
	DonationDate  time.Time `gorm:"autoCreateTime" json:"donation_date"`
	Status        string    `gorm:"size:50;default:received" json:"status"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	TransactionID string    `gorm:"size:100" json:"transaction_id"`
}

func (Donation) TableName() string {
	return "donations"
}
