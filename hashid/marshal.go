package hashid

import "gopkg.in/yaml.v3"

// MarshalText implements encoding.TextMarshaler with the lowercase hex
// form. encoding/json picks this up for struct fields and map keys alike.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly
// EncodedSize hex characters in either case.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := FromHexString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the Size raw
// digest bytes.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It requires
// exactly Size bytes.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the lowercase hex form as
// a plain scalar.
func (id ID) MarshalYAML() (interface{}, error) {
	return id.Hex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler against the yaml.v3 node API.
// Non-scalar nodes are rejected as KindInvalidFormat.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return wrapError(KindInvalidFormat, "hashid: yaml node is not a string", err)
	}
	parsed, err := FromHexString(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
