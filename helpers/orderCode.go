package helpers

import (
	"crypto/rand"
	"log"
)

// Alphabet without 0/O/1/I so codes read unambiguously over the phone.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const OrderCodeLength = 6

// NewOrderCode returns the short human-facing code printed on receipts and
// read out to couriers. Uniqueness is not guaranteed; the order_id stays the
// real identity.
func NewOrderCode() string {
	buf := make([]byte, OrderCodeLength)
	if _, err := rand.Read(buf); err != nil {
		log.Panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
