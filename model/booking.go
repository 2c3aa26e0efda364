package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentInfo struct {
	TransactionId string     `json:"transaction_id" bson:"transaction_id"`
	Method        string     `json:"method" bson:"method"`
	PaidAt        *time.Time `json:"paid_at" bson:"paid_at,omitempty"`
}

// HasPaid reports whether payment completed; presence of paid_at is the
// single signal the cancellation policy keys on.
func (p *PaymentInfo) HasPaid() bool {
	return p != nil && p.PaidAt != nil
}

type RefundInfo struct {
	RefundedAt   time.Time `json:"refunded_at" bson:"refunded_at"`
	RefundAmount float64   `json:"refund_amount" bson:"refund_amount"`
	RefundMethod string    `json:"refund_method" bson:"refund_method"`
}

type Booking struct {
	Id                 primitive.ObjectID `json:"_id" bson:"_id"`
	User               primitive.ObjectID `json:"user" bson:"user"`
	TravelPackage      primitive.ObjectID `json:"travel_package" bson:"travel_package"`
	NumberOfTravellers uint               `json:"number_of_travellers" bson:"number_of_travellers"`
	TotalPrice         float64            `json:"total_price" bson:"total_price"`
	Status             BookingStatus      `json:"status" bson:"status"`
	PaymentInfo        *PaymentInfo       `json:"payment_info" bson:"payment_info,omitempty"`
	RefundInfo         *RefundInfo        `json:"refund_info" bson:"refund_info,omitempty"`
	Remarks            string             `json:"remarks" bson:"remarks,omitempty"`
	BookedAt           time.Time          `json:"booked_at" bson:"booked_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
