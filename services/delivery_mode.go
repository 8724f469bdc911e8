package services

import (
	"relay-bot/contract"
	"sync/atomic"
)

var _ contract.IDeliveryMode = (*DeliveryMode)(nil)

// DeliveryMode is the process-wide document/media switch.
// Uploads read it once when they start; a toggle during an upload applies to the next one.
type DeliveryMode struct {
	asDocument atomic.Bool
}

// NewDeliveryMode starts in document mode.
func NewDeliveryMode() *DeliveryMode {
	m := &DeliveryMode{}
	m.asDocument.Store(true)
	return m
}

func (m *DeliveryMode) IsDocument() bool {
	return m.asDocument.Load()
}

// Toggle flips the mode and returns the new value.
func (m *DeliveryMode) Toggle() bool {
	for {
		current := m.asDocument.Load()
		if m.asDocument.CompareAndSwap(current, !current) {
			return !current
		}
	}
}

// Label is the user-facing name of a mode.
func Label(asDocument bool) string {
	if asDocument {
		return "Document"
	}
	return "Media"
}
