package signer

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/custody/keycustody"
)

// XRPL binary format field IDs for the Payment fields we emit, as
// (type code, field code) pairs. Fields must be serialized in ascending
// order of type code then field code.
const (
	xrplTypeUInt16    = 1
	xrplTypeUInt32    = 2
	xrplTypeAmount    = 6
	xrplTypeBlob      = 7
	xrplTypeAccountID = 8

	fieldTransactionType    = 2  // UInt16
	fieldFlags              = 2  // UInt32
	fieldSequence           = 4  // UInt32
	fieldDestinationTag     = 14 // UInt32
	fieldLastLedgerSequence = 27 // UInt32
	fieldAmount             = 1  // Amount
	fieldFee                = 8  // Amount
	fieldSigningPubKey      = 3  // Blob
	fieldTxnSignature       = 4  // Blob
	fieldAccount            = 1  // AccountID
	fieldDestination        = 3  // AccountID

	paymentTransactionType = 0
	tfFullyCanonicalSig    = 0x80000000

	// native amounts set the "not XRP" bit to zero and the positive bit
	xrplNativePositiveBit = 0x4000000000000000

	maxDrops = 100_000_000_000 * 1_000_000 // total XRP supply in drops
)

// signing hash prefixes
var (
	prefixUnsignedTx = []byte{0x53, 0x54, 0x58, 0x00} // "STX\0"
	prefixTxID       = []byte{0x54, 0x58, 0x4E, 0x00} // "TXN\0"
)

// xrplPayment carries the decoded fields of a native XRP payment.
type xrplPayment struct {
	account            []byte // 20-byte account ID
	destination        []byte // 20-byte account ID
	amount             uint64 // drops
	fee                uint64 // drops
	sequence           uint32
	destinationTag     *uint32
	lastLedgerSequence uint32 // 0 omits the field
	signingPubKey      []byte // 33-byte compressed key
	txnSignature       []byte // DER signature, nil while unsigned
}

func newXRPLPayment(req *SignXRPLRequest, pubKey []byte) (*xrplPayment, error) {
	account, err := keycustody.DecodeXRPLAccountID(req.FromAddress)
	if err != nil {
		return nil, errors.Wrap(err, "invalid source address")
	}

	destination, err := keycustody.DecodeXRPLAccountID(req.To)
	if err != nil {
		return nil, errors.Wrap(err, "invalid destination address")
	}

	amount, err := parseDrops(req.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}

	fee, err := parseDrops(req.Fee)
	if err != nil {
		return nil, errors.Wrap(err, "invalid fee")
	}

	return &xrplPayment{
		account:            account,
		destination:        destination,
		amount:             amount,
		fee:                fee,
		sequence:           req.Sequence,
		destinationTag:     req.DestinationTag,
		lastLedgerSequence: req.LastLedgerSequence,
		signingPubKey:      pubKey,
	}, nil
}

// serialize emits the payment in canonical field order. The signature field
// is skipped while txnSignature is nil, which yields the signing payload.
func (p *xrplPayment) serialize() []byte {
	var buf bytes.Buffer

	writeFieldID(&buf, xrplTypeUInt16, fieldTransactionType)
	writeUint16(&buf, paymentTransactionType)

	writeFieldID(&buf, xrplTypeUInt32, fieldFlags)
	writeUint32(&buf, tfFullyCanonicalSig)

	writeFieldID(&buf, xrplTypeUInt32, fieldSequence)
	writeUint32(&buf, p.sequence)

	if p.destinationTag != nil {
		writeFieldID(&buf, xrplTypeUInt32, fieldDestinationTag)
		writeUint32(&buf, *p.destinationTag)
	}

	if p.lastLedgerSequence > 0 {
		writeFieldID(&buf, xrplTypeUInt32, fieldLastLedgerSequence)
		writeUint32(&buf, p.lastLedgerSequence)
	}

	writeFieldID(&buf, xrplTypeAmount, fieldAmount)
	writeUint64(&buf, xrplNativePositiveBit|p.amount)

	writeFieldID(&buf, xrplTypeAmount, fieldFee)
	writeUint64(&buf, xrplNativePositiveBit|p.fee)

	writeFieldID(&buf, xrplTypeBlob, fieldSigningPubKey)
	writeVL(&buf, p.signingPubKey)

	if p.txnSignature != nil {
		writeFieldID(&buf, xrplTypeBlob, fieldTxnSignature)
		writeVL(&buf, p.txnSignature)
	}

	writeFieldID(&buf, xrplTypeAccountID, fieldAccount)
	writeVL(&buf, p.account)

	writeFieldID(&buf, xrplTypeAccountID, fieldDestination)
	writeVL(&buf, p.destination)

	return buf.Bytes()
}

// signingHash is SHA512Half("STX\0" || serialized-without-signature).
func (p *xrplPayment) signingHash() []byte {
	sig := p.txnSignature
	p.txnSignature = nil
	payload := p.serialize()
	p.txnSignature = sig

	return sha512Half(prefixUnsignedTx, payload)
}

// txID is SHA512Half("TXN\0" || fully signed blob).
func txID(signedBlob []byte) []byte {
	return sha512Half(prefixTxID, signedBlob)
}

func sha512Half(parts ...[]byte) []byte {
	h := sha512.New()
	for _, part := range parts {
		h.Write(part)
	}

	return h.Sum(nil)[:32]
}

func writeFieldID(buf *bytes.Buffer, typeCode, fieldCode byte) {
	if fieldCode < 16 {
		buf.WriteByte(typeCode<<4 | fieldCode)
		return
	}

	buf.WriteByte(typeCode << 4)
	buf.WriteByte(fieldCode)
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

// writeVL emits a variable-length prefix followed by the data. Our payloads
// (keys, signatures, account IDs) never exceed the single-byte range.
func writeVL(buf *bytes.Buffer, data []byte) {
	if len(data) <= 192 {
		buf.WriteByte(byte(len(data)))
	} else {
		length := len(data) - 193
		buf.WriteByte(byte(193 + length>>8))
		buf.WriteByte(byte(length & 0xff))
	}

	buf.Write(data)
}

func parseDrops(s string) (uint64, error) {
	drops, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, errors.Errorf("not a base-10 integer: %q", s)
	}
	if drops.Sign() < 0 || !drops.IsUint64() || drops.Uint64() > maxDrops {
		return 0, errors.Errorf("drops amount out of range: %q", s)
	}

	return drops.Uint64(), nil
}
