package payslip

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"school-erp/internal/payhistory"

	"github.com/shopspring/decimal"
)

const referencePrefix = "PS-"

var sourceCodes = map[string]string{
	payhistory.SourceFormal: "F",
	payhistory.SourceManual: "M",
}

func checksum(source, id string, gross, net decimal.Decimal) string {
	sum := sha256.Sum256([]byte(source + "|" + id + "|" + gross.StringFixed(2) + "|" + net.StringFixed(2)))
	return hex.EncodeToString(sum[:])[:8]
}

// Reference builds the verification reference printed on a payslip. It
// changes if the stored amounts ever change.
func Reference(e payhistory.Entry) string {
	return referencePrefix + sourceCodes[e.Source] + "-" + e.ID + "-" + checksum(e.Source, e.ID, e.GrossPay, e.NetPay)
}

// ParseReference splits a reference into source, entry id and check.
func ParseReference(ref string) (source, id, check string, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(ref), referencePrefix)
	if !found || len(rest) < 2 || rest[1] != '-' {
		return "", "", "", false
	}

	switch rest[:1] {
	case "F":
		source = payhistory.SourceFormal
	case "M":
		source = payhistory.SourceManual
	default:
		return "", "", "", false
	}

	rest = rest[2:]
	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return "", "", "", false
	}
	return source, rest[:i], strings.ToLower(rest[i+1:]), true
}
