package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BillType направление движения денег
type BillType int

const (
	// BillTypeExpenditure расход
	BillTypeExpenditure BillType = -1
	// BillTypeIncome доход
	BillTypeIncome BillType = 1
)

// String returns the bill type name.
func (t BillType) String() string {
	switch t {
	case BillTypeIncome:
		return "income"
	case BillTypeExpenditure:
		return "expenditure"
	default:
		return "unknown"
	}
}

// ParseBillType parses "income"/"expenditure" (or the numeric form).
func ParseBillType(s string) (BillType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in", "1", "+1":
		return BillTypeIncome, nil
	case "expenditure", "expense", "out", "-1":
		return BillTypeExpenditure, nil
	default:
		return 0, fmt.Errorf("unknown bill type %q", s)
	}
}

// Bill представляет одну запись дохода или расхода внутри книги.
type Bill struct {
	Time        time.Time  `json:"time"`
	CreatedAt   time.Time  `json:"crt_time"`
	UpdatedAt   time.Time  `json:"upd_time"`
	ID          string     `json:"_id"`
	BookID      string     `json:"book_id"`
	Category    string     `json:"category,omitempty"`
	Remark      string     `json:"remark,omitempty"`
	OwnerID     string     `json:"crt_user"`
	ContentHash string     `json:"hash"`
	ImageIDs    []string   `json:"images,omitempty"`
	Money       Money      `json:"money"`
	Type        BillType   `json:"type"`
	SyncStatus  SyncStatus `json:"synced"`
	Deleted     bool       `json:"deleted"`
}

// IsDirty reports whether the bill still has to be pushed to the server.
func (b *Bill) IsDirty() bool {
	return b.SyncStatus != Synced
}

// Touch marks the bill as locally modified and refreshes its content hash.
func (b *Bill) Touch(now time.Time) {
	b.UpdatedAt = now
	b.SyncStatus = NotSynced
	b.ContentHash = ContentHash(b)
}

// Clone returns a deep copy of the bill.
func (b *Bill) Clone() *Bill {
	c := *b
	if b.ImageIDs != nil {
		c.ImageIDs = append([]string(nil), b.ImageIDs...)
	}
	return &c
}

// Money сумма в минимальных единицах валюты (копейки/фэни)
type Money int64

// ParseMoney parses a decimal amount like "12.5" or "-3.07" into cents.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two fractional digits", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return Money(cents), nil
}

// String formats the amount with two fractional digits.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
