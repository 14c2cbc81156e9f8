package domain

import "fmt"

// SequenceEntity names a counter family of the sequence generator.
type SequenceEntity string

const (
	SequenceBooking       SequenceEntity = "booking"
	SequenceCampaign      SequenceEntity = "campaign"
	SequencePurchaseOrder SequenceEntity = "purchase_order"
	SequenceInvoice       SequenceEntity = "invoice"
)

var sequencePrefixes = map[SequenceEntity]string{
	SequenceBooking:       "BK",
	SequenceCampaign:      "CP",
	SequencePurchaseOrder: "PO",
	SequenceInvoice:       "INV",
}

// Prefix returns the reference code prefix of the entity.
func (e SequenceEntity) Prefix() (string, error) {
	p, ok := sequencePrefixes[e]
	if !ok {
		return "", Validation("unknown sequence entity %q", e)
	}
	return p, nil
}

// FormatReference renders <PREFIX>-<year>-<seq>, the sequence zero-padded to
// four digits.
func FormatReference(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}
