package docparse

import (
	"regexp"
	"strings"
)

var (
	serialHeaderRe = regexp.MustCompile(`(?i)\b(?:s[./]?\s?no|sl\.?\s*no|sr\.?\s*no|serial|line\s*no|#)`)
	itemHeaderRe   = regexp.MustCompile(`(?i)\b(?:item|description|product)\b`)
	tableEndRe     = regexp.MustCompile(`(?i)\b(?:sub\s*total|subtotal|total)\b`)
	digitRe        = regexp.MustCompile(`\d`)
	letterRe       = regexp.MustCompile(`[A-Za-z]`)
	allDigitsRe    = regexp.MustCompile(`^\d+$`)
)

// isItemTableHeader reports whether a line looks like the header row of a
// line-item table: a serial-number column label alongside an
// item/description column label.
func isItemTableHeader(line string) bool {
	return serialHeaderRe.MatchString(line) && itemHeaderRe.MatchString(line)
}

// extractItems locates the item table and parses the rows after its header.
// It never fails: no table means no items, and a row that can't be parsed is
// skipped while scanning continues. Iteration stops at the first
// total/subtotal line.
func extractItems(lines []string) []LineItem {
	start := -1
	for i, line := range lines {
		if isItemTableHeader(line) {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return nil
	}

	var items []LineItem
	for _, line := range lines[start:] {
		if tableEndRe.MatchString(line) {
			break
		}

		var item *LineItem
		switch {
		case strings.Contains(line, "|"):
			item = parseDelimitedRow(line)
		case looksLikeItemRow(line):
			item = parsePositionalRow(line)
		}
		if item == nil {
			continue
		}

		if item.SerialNo <= 0 {
			item.SerialNo = len(items) + 1
		}
		finalizeItem(item)
		items = append(items, *item)
	}
	return items
}

// parseDelimitedRow handles the strict pipe-separated layout. Rows with
// fewer than the expected column count are rejected outright; the flexible
// heuristic is never applied to a delimited line.
func parseDelimitedRow(line string) *LineItem {
	fields := strings.Split(line, "|")
	if len(fields) < 9 {
		return nil
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	item := newLineItem(int(NormalizeNumber(fields[0])))
	item.Description = fields[1]
	item.Quantity = NormalizeNumber(fields[2])
	item.UnitCost = NormalizeNumber(fields[3])
	item.DiscountPercent = NormalizeNumber(fields[4])
	item.DiscountAmount = NormalizeNumber(fields[5])
	item.NetTotal = NormalizeNumber(fields[6])
	item.VATPercent = NormalizeNumber(fields[7])
	item.VATAmount = NormalizeNumber(fields[8])
	return &item
}

// looksLikeItemRow decides whether an undelimited line is worth the
// positional heuristic: it needs digits, letters and at least three tokens.
func looksLikeItemRow(line string) bool {
	return digitRe.MatchString(line) &&
		letterRe.MatchString(line) &&
		len(strings.Fields(line)) >= 3
}

// positionalSlots is the fixed assignment order for numeric tokens in an
// undelimited row. A row carrying fewer numbers than slots fills only the
// leading slots; there is no way to detect which column a missing number
// belonged to, so the order is taken at face value.
func positionalSlots(item *LineItem) []*float64 {
	return []*float64{
		&item.Quantity,
		&item.UnitCost,
		&item.DiscountPercent,
		&item.DiscountAmount,
		&item.NetTotal,
		&item.VATPercent,
		&item.VATAmount,
	}
}

// parsePositionalRow handles rows without delimiters: a leading all-digit
// token is the serial number, the longest lettered token is the description,
// and the remaining numeric tokens fill the slots in appearance order.
func parsePositionalRow(line string) *LineItem {
	tokens := strings.Fields(line)
	item := newLineItem(0)

	if allDigitsRe.MatchString(tokens[0]) {
		item.SerialNo = int(NormalizeNumber(tokens[0]))
		tokens = tokens[1:]
	}

	descIdx := -1
	for i, tok := range tokens {
		if letterRe.MatchString(tok) && (descIdx < 0 || len(tok) > len(tokens[descIdx])) {
			descIdx = i
		}
	}
	if descIdx >= 0 {
		item.Description = tokens[descIdx]
	}

	slots := positionalSlots(&item)
	slot := 0
	for i, tok := range tokens {
		if i == descIdx || !digitRe.MatchString(tok) {
			continue
		}
		if slot >= len(slots) {
			break
		}
		*slots[slot] = NormalizeNumber(tok)
		slot++
	}
	return &item
}

// finalizeItem computes derived monetary fields only when the source row did
// not carry them directly, and populates the compatibility aliases.
func finalizeItem(item *LineItem) {
	if item.DiscountAmount == 0 && item.DiscountPercent > 0 {
		item.DiscountAmount = item.Quantity * item.UnitCost * item.DiscountPercent / 100
	}
	if item.NetTotal == 0 && item.Quantity > 0 {
		item.NetTotal = item.Quantity*item.UnitCost - item.DiscountAmount
	}
	if item.VATAmount == 0 && item.VATPercent > 0 {
		item.VATAmount = item.NetTotal * item.VATPercent / 100
	}
	item.ItemName = item.Description
	item.UnitPrice = item.UnitCost
}
