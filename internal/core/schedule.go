package core

import "strings"

// SlotCapacity is the maximum number of clients per (weekday, slot) pair.
const SlotCapacity = 4

type (
	// Weekday is one of the five working days.
	Weekday string

	// TimeSlot is an hourly attendance slot. Noon is skipped for lunch.
	TimeSlot string

	// Booking assigns a client to a weekly attendance slot.
	Booking struct {
		Weekday Weekday
		Slot    TimeSlot
		Client  string
	}
)

const (
	Segunda Weekday = "Segunda"
	Terca   Weekday = "Terça"
	Quarta  Weekday = "Quarta"
	Quinta  Weekday = "Quinta"
	Sexta   Weekday = "Sexta"
)

// Weekdays returns the working days in week order.
func Weekdays() []Weekday {
	return []Weekday{Segunda, Terca, Quarta, Quinta, Sexta}
}

// TimeSlots returns the attendance slots in day order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{
		"08:00", "09:00", "10:00", "11:00",
		"13:00", "14:00", "15:00", "16:00", "17:00",
	}
}

// ParseWeekday matches a cell value to a working day, tolerating the
// accent-less spelling.
func ParseWeekday(s string) (Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Weekdays() {
		if v == strings.ToLower(string(d)) {
			return d, nil
		}
	}
	switch v {
	case "terca":
		return Terca, nil
	}
	return "", ErrInvalidWeekday
}

func (d Weekday) Valid() bool {
	for _, w := range Weekdays() {
		if d == w {
			return true
		}
	}
	return false
}

func (t TimeSlot) Valid() bool {
	for _, s := range TimeSlots() {
		if t == s {
			return true
		}
	}
	return false
}

func (b Booking) Validate() error {
	if !b.Weekday.Valid() {
		return ErrInvalidWeekday
	}
	if !b.Slot.Valid() {
		return ErrInvalidSlot
	}
	if strings.TrimSpace(b.Client) == "" {
		return ErrEmptyClient
	}
	return nil
}
