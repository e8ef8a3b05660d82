package types

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestHexIntYamlRoundTrip(t *testing.T) {
	in := HexInt(0x1d6b)

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\"0x1d6b\"\n" {
		t.Fatalf("unexpected yaml encoding: %q", data)
	}

	var out HexInt
	err = yaml.Unmarshal(data, &out)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %v != %v", out, in)
	}
}

func TestHexIntDecodeForms(t *testing.T) {
	cases := map[string]HexInt{
		`"0x1d6b"`: 0x1d6b,
		`"1d6b"`:   0x1d6b,
		`"0X1D6B"`: 0x1d6b,
		`7531`:     7531,
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			var h HexInt
			err := json.Unmarshal([]byte(input), &h)
			if err != nil {
				t.Fatal(err)
			}
			if h != want {
				t.Fatalf("got %v, want %v", h, want)
			}
		})
	}
}

func TestHexByteRange(t *testing.T) {
	var h HexByte
	err := yaml.Unmarshal([]byte(`"0x1d6b"`), &h)
	if err == nil {
		t.Fatal("16-bit value should not fit in HexByte")
	}
	t.Log(err)

	err = yaml.Unmarshal([]byte(`"ff"`), &h)
	if err != nil {
		t.Fatal(err)
	}
	if h != 0xff {
		t.Fatalf("got %v, want 0xff", h)
	}
}

func TestParseHex(t *testing.T) {
	v16, err := ParseHex16("0x046d")
	if err != nil {
		t.Fatal(err)
	}
	if v16 != 0x046d {
		t.Fatalf("got %#04x", v16)
	}

	_, err = ParseHex8("100")
	if err == nil {
		t.Fatal("overflowing 8-bit value should fail")
	}

	_, err = ParseHex16("g123")
	if err == nil {
		t.Fatal("non-hex value should fail")
	}
}
