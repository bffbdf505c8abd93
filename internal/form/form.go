// Package form holds the mutable state of one intake session: the brigade's
// basic information and the item ledgers for every resource category.
// Nothing in this package signals errors on bad input; numeric input is
// clamped to a safe value instead, and format problems are the wizard's
// validation concern.
package form

import "strconv"

// Field identifiers for the info section. These are wire-compatible with
// the submission payload and must not change.
const (
	FieldName             = "nombre"
	FieldActiveMembers    = "cantidadactivos"
	FieldCommanderName    = "nombrecomandante"
	FieldCommanderPhone   = "celularcomandante"
	FieldLogisticsOfficer = "encargadologistica"
	FieldLogisticsPhone   = "celularlogistica"
	FieldEmergencyNumbers = "numerosemergencia"
)

// BasicInfo is the brigade identification record collected by the info
// section. ActiveMembers is always at least 1.
type BasicInfo struct {
	Name             string
	ActiveMembers    int
	CommanderName    string
	CommanderPhone   string
	LogisticsOfficer string
	LogisticsPhone   string
	EmergencyNumbers string
}

// NewBasicInfo returns the initial record for a fresh session.
func NewBasicInfo() BasicInfo {
	return BasicInfo{ActiveMembers: 1}
}

// Set assigns a field by its wire identifier. String fields are stored as
// given; the member count is coerced so it never drops below 1.
func (b *BasicInfo) Set(field, value string) {
	switch field {
	case FieldName:
		b.Name = value
	case FieldActiveMembers:
		b.ActiveMembers = CoerceCount(value)
	case FieldCommanderName:
		b.CommanderName = value
	case FieldCommanderPhone:
		b.CommanderPhone = value
	case FieldLogisticsOfficer:
		b.LogisticsOfficer = value
	case FieldLogisticsPhone:
		b.LogisticsPhone = value
	case FieldEmergencyNumbers:
		b.EmergencyNumbers = value
	}
}

// Get returns a field's string form by its wire identifier.
func (b BasicInfo) Get(field string) string {
	switch field {
	case FieldName:
		return b.Name
	case FieldActiveMembers:
		return strconv.Itoa(b.ActiveMembers)
	case FieldCommanderName:
		return b.CommanderName
	case FieldCommanderPhone:
		return b.CommanderPhone
	case FieldLogisticsOfficer:
		return b.LogisticsOfficer
	case FieldLogisticsPhone:
		return b.LogisticsPhone
	case FieldEmergencyNumbers:
		return b.EmergencyNumbers
	}
	return ""
}

// Values returns the full record as field id → string form, the shape the
// validation engine consumes.
func (b BasicInfo) Values() map[string]string {
	return map[string]string{
		FieldName:             b.Name,
		FieldActiveMembers:    strconv.Itoa(b.ActiveMembers),
		FieldCommanderName:    b.CommanderName,
		FieldCommanderPhone:   b.CommanderPhone,
		FieldLogisticsOfficer: b.LogisticsOfficer,
		FieldLogisticsPhone:   b.LogisticsPhone,
		FieldEmergencyNumbers: b.EmergencyNumbers,
	}
}

// CoerceAmount parses a quantity or cost entry. Non-numeric or negative
// input clamps to 0.
func CoerceAmount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CoerceCount parses the active-member count. Non-numeric input or
// anything below 1 clamps to 1.
func CoerceCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// clampAmount keeps programmatic quantity updates non-negative.
func clampAmount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
