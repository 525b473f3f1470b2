package core

import "time"

// Timestamp is a UTC instant that encodes as RFC 3339 with nanoseconds.
type Timestamp time.Time

// Now is the current instant in UTC.
func Now() Timestamp {
	return Timestamp(time.Now().UTC())
}

// ParseTimestamp reads an RFC 3339 string.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp(t.UTC()), nil
}

func (t Timestamp) IsZero() bool { return time.Time(t).IsZero() }

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm.UTC())
	return nil
}
