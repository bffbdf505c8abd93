package testutil

import "brigada/internal/form"

// InfoOption configures the basic-info record of a built form.
type InfoOption func(*form.BasicInfo)

// Name sets the brigade name.
func Name(name string) InfoOption {
	return func(b *form.BasicInfo) { b.Name = name }
}

// ActiveMembers sets the member count.
func ActiveMembers(n int) InfoOption {
	return func(b *form.BasicInfo) { b.ActiveMembers = n }
}

// Commander sets the commander name and phone.
func Commander(name, phone string) InfoOption {
	return func(b *form.BasicInfo) {
		b.CommanderName = name
		b.CommanderPhone = phone
	}
}

// Logistics sets the logistics officer name and phone.
func Logistics(name, phone string) InfoOption {
	return func(b *form.BasicInfo) {
		b.LogisticsOfficer = name
		b.LogisticsPhone = phone
	}
}

// Emergency sets the emergency numbers list.
func Emergency(numbers string) InfoOption {
	return func(b *form.BasicInfo) { b.EmergencyNumbers = numbers }
}
