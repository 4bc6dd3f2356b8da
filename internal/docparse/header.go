package docparse

import (
	"regexp"
	"strings"
)

// headerFields is the shared partial header both document types fill before
// the parser maps it into its concrete result type. Every field is optional;
// unset fields are handled by the finalization step.
type headerFields struct {
	DocNumber    string
	DocDate      string
	Party        string
	Status       string
	PaymentTerms string
	DueDate      string
	Address      string
	Contact      string
	Notes        string
	HandledBy    string
}

// fieldRule binds a line matcher to one header field. Rules form an ordered
// cascade: each rule scans all lines top to bottom and the first matching
// line wins; a field already set by an earlier (stronger) rule is never
// overwritten by a later one.
type fieldRule struct {
	re  *regexp.Regexp
	get func(h *headerFields) string
	set func(h *headerFields, v string)
}

// labelValue returns the text after the first colon, or the whole line when
// there is no colon.
func labelValue(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line)
}

func applyFieldRules(lines []string, rules []fieldRule, h *headerFields) {
	for _, rule := range rules {
		if rule.get(h) != "" {
			continue
		}
		for _, line := range lines {
			if !rule.re.MatchString(line) {
				continue
			}
			if v := labelValue(line); v != "" {
				rule.set(h, v)
			}
			break
		}
	}
}

// docNumberRe is the loose structural shape of a document number: alphabetic
// prefix, digits, optional alphanumeric suffix (e.g. GR-20251008-N1A5M).
var docNumberRe = regexp.MustCompile(`\b[A-Za-z]{2,5}-\d{3,}(?:-[A-Za-z0-9]+)?\b`)

// findStructuralNumber is the second tier of document-number extraction,
// used only when no labelled line matched anywhere.
func findStructuralNumber(lines []string) string {
	for _, line := range lines {
		if m := docNumberRe.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// sectionLabelRe marks the start of a new labelled section, which terminates
// a multi-line block field.
var sectionLabelRe = regexp.MustCompile(`^[A-Za-z][A-Za-z ./]{0,30}:`)

// extractBlock collects a multi-line field: the label line's remainder plus
// subsequent lines up to the next section label or the item-table header,
// joined with newlines in order.
func extractBlock(lines []string, labelRe *regexp.Regexp) string {
	for i, line := range lines {
		if !labelRe.MatchString(line) {
			continue
		}
		var parts []string
		if v := labelValue(line); v != "" {
			parts = append(parts, v)
		}
		for j := i + 1; j < len(lines); j++ {
			if sectionLabelRe.MatchString(lines[j]) || isItemTableHeader(lines[j]) {
				break
			}
			parts = append(parts, lines[j])
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

func docNumberGet(h *headerFields) string { return h.DocNumber }
func docNumberSet(h *headerFields, v string) { h.DocNumber = v }
func docDateGet(h *headerFields) string { return h.DocDate }
func docDateSet(h *headerFields, v string) { h.DocDate = v }
func partyGet(h *headerFields) string { return h.Party }
func partySet(h *headerFields, v string) { h.Party = v }
func statusGet(h *headerFields) string { return h.Status }
func statusSet(h *headerFields, v string) { h.Status = v }
func termsGet(h *headerFields) string { return h.PaymentTerms }
func termsSet(h *headerFields, v string) { h.PaymentTerms = v }
func dueDateGet(h *headerFields) string { return h.DueDate }
func dueDateSet(h *headerFields, v string) { h.DueDate = v }
func notesGet(h *headerFields) string { return h.Notes }
func notesSet(h *headerFields, v string) { h.Notes = v }
func handledByGet(h *headerFields) string { return h.HandledBy }
func handledBySet(h *headerFields, v string) { h.HandledBy = v }

var receiptHeaderRules = []fieldRule{
	{regexp.MustCompile(`(?i)\bgoods\s+receipt\s*(?:no\b|number\b|#)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\breceipt\s*(?:no\b|number\b|#)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\bGRN\s*(?:no\b|number\b|#)?\s*:`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\breference\s*(?:no|number)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\bdocument\s*(?:no|number)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\breceipt\s+date\b`), docDateGet, docDateSet},
	{regexp.MustCompile(`(?i)\breceived\s+date\b`), docDateGet, docDateSet},
	{regexp.MustCompile(`(?i)^date\s*:`), docDateGet, docDateSet},
	{regexp.MustCompile(`(?i)^supplier(?:\s+name)?\s*:`), partyGet, partySet},
	{regexp.MustCompile(`(?i)^vendor(?:\s+name)?\s*:`), partyGet, partySet},
	{regexp.MustCompile(`(?i)^from\s*:`), partyGet, partySet},
	{regexp.MustCompile(`(?i)\bpayment\s+terms\b`), termsGet, termsSet},
	{regexp.MustCompile(`(?i)^terms\s*:`), termsGet, termsSet},
	{regexp.MustCompile(`(?i)\bdue\s+date\b`), dueDateGet, dueDateSet},
	{regexp.MustCompile(`(?i)^status\s*:`), statusGet, statusSet},
	{regexp.MustCompile(`(?i)^(?:notes|remarks|comments)\s*:`), notesGet, notesSet},
	{regexp.MustCompile(`(?i)\breceived\s+by\b`), handledByGet, handledBySet},
}

var deliveryHeaderRules = []fieldRule{
	{regexp.MustCompile(`(?i)\bdelivery\s+note\s*(?:no\b|number\b|#)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\bdelivery\s*(?:no\b|number\b|#)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\bDN\s*(?:no\b|number\b|#)?\s*:`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\breference\s*(?:no|number)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\bdocument\s*(?:no|number)`), docNumberGet, docNumberSet},
	{regexp.MustCompile(`(?i)\bdelivery\s+date\b`), docDateGet, docDateSet},
	{regexp.MustCompile(`(?i)\bdispatch\s+date\b`), docDateGet, docDateSet},
	{regexp.MustCompile(`(?i)^date\s*:`), docDateGet, docDateSet},
	{regexp.MustCompile(`(?i)^customer(?:\s+name)?\s*:`), partyGet, partySet},
	{regexp.MustCompile(`(?i)^consignee\s*:`), partyGet, partySet},
	{regexp.MustCompile(`(?i)\bdelivery\s+terms\b`), termsGet, termsSet},
	{regexp.MustCompile(`(?i)^terms\s*:`), termsGet, termsSet},
	{regexp.MustCompile(`(?i)\bdue\s+date\b`), dueDateGet, dueDateSet},
	{regexp.MustCompile(`(?i)^status\s*:`), statusGet, statusSet},
	{regexp.MustCompile(`(?i)^(?:notes|remarks|comments)\s*:`), notesGet, notesSet},
	{regexp.MustCompile(`(?i)\b(?:delivered|prepared)\s+by\b`), handledByGet, handledBySet},
}

var (
	receiptAddressRe  = regexp.MustCompile(`(?i)^(?:supplier\s+address|address)\s*:`)
	deliveryAddressRe = regexp.MustCompile(`(?i)^(?:delivery\s+address|ship\s+to|deliver\s+to|address)\s*:`)
	contactRe         = regexp.MustCompile(`(?i)^(?:contact\s+person|contact|attn)\s*:`)
)

// extractHeader runs the rule cascade and block-field extraction over the
// segmented lines. The date is normalized here; the document-number filename
// fallback belongs to the orchestrator.
func extractHeader(lines []string, rules []fieldRule, addressRe *regexp.Regexp) headerFields {
	var h headerFields
	applyFieldRules(lines, rules, &h)
	if h.DocNumber == "" {
		h.DocNumber = findStructuralNumber(lines)
	}
	if h.DocDate != "" {
		h.DocDate = NormalizeDate(h.DocDate)
	}
	if h.DueDate != "" {
		h.DueDate = NormalizeDate(h.DueDate)
	}
	h.Address = extractBlock(lines, addressRe)
	h.Contact = extractBlock(lines, contactRe)
	return h
}
