package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexInt is a 16-bit identifier (vendor, product, language) that renders as
// 0x-prefixed hex in JSON and YAML. Decoding accepts hex with or without the
// 0x prefix, as well as plain integers.
type HexInt uint16

// HexByte is the 8-bit counterpart of HexInt, used for class, subclass,
// protocol and interface identifiers.
type HexByte uint8

func (h HexInt) String() string {
	return fmt.Sprintf("0x%04x", uint16(h))
}

func (h HexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HexInt) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := toUint(raw, 16)
	if err != nil {
		return err
	}
	*h = HexInt(v)
	return nil
}

func (h HexInt) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

func (h *HexInt) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	v, err := toUint(raw, 16)
	if err != nil {
		return err
	}
	*h = HexInt(v)
	return nil
}

func (h HexByte) String() string {
	return fmt.Sprintf("0x%02x", uint8(h))
}

func (h HexByte) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HexByte) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := toUint(raw, 8)
	if err != nil {
		return err
	}
	*h = HexByte(v)
	return nil
}

func (h HexByte) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

func (h *HexByte) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	v, err := toUint(raw, 8)
	if err != nil {
		return err
	}
	*h = HexByte(v)
	return nil
}

// ParseHex16 parses a 16-bit identifier from its textual form, with or
// without the 0x prefix.
func ParseHex16(s string) (uint16, error) {
	v, err := parseHex(s, 16)
	return uint16(v), err
}

// ParseHex8 parses an 8-bit identifier from its textual form, with or
// without the 0x prefix.
func ParseHex8(s string) (uint8, error) {
	v, err := parseHex(s, 8)
	return uint8(v), err
}

func parseHex(s string, bits int) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(trimmed, 16, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %d-bit hex value %q", bits, s)
	}
	return v, nil
}

func toUint(raw any, bits int) (uint64, error) {
	switch v := raw.(type) {
	case string:
		return parseHex(v, bits)
	case int:
		if v < 0 || v >= 1<<bits {
			return 0, fmt.Errorf("value %d out of range for %d bits", v, bits)
		}
		return uint64(v), nil
	case float64: // encoding/json decodes numbers as float64
		if v < 0 || v >= float64(uint64(1)<<bits) || v != float64(uint64(v)) {
			return 0, fmt.Errorf("value %v out of range for %d bits", v, bits)
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}
