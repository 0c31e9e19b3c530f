package usecase

import "encoding/json"

// Optional is a request field that distinguishes three states: absent from the
// body, explicitly null, and present with a value. encoding/json only invokes
// UnmarshalJSON for keys that appear in the input, so Set stays false for
// omitted fields and a partial update cannot touch them.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// columnValue is what goes into the update set: the value when present, nil
// when the caller sent an explicit null.
func (o Optional[T]) columnValue() interface{} {
	if o.Null {
		return nil
	}
	return o.Value
}
