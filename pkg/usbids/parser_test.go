package usbids

import (
	"os"
	"strings"
	"testing"
)

func parseTestDB(t *testing.T) *Registry {
	t.Helper()

	f, err := os.Open("testdata/testdb.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	reg, err := ParseIDs(f)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestParseHeader(t *testing.T) {
	reg := parseTestDB(t)

	if reg.Version != "2024.01.01-test" {
		t.Fatalf("unexpected version: %q", reg.Version)
	}
	if reg.Date != "2024-01-01 00:00:00" {
		t.Fatalf("unexpected date: %q", reg.Date)
	}
}

func TestParseVendorsAndDevices(t *testing.T) {
	reg := parseTestDB(t)

	if len(reg.Vendors) != 2 {
		t.Fatalf("expected 2 vendors, got %d", len(reg.Vendors))
	}

	vendor := reg.Vendor(0xabcd)
	if vendor == nil {
		t.Fatal("vendor abcd not found")
	}
	if vendor.Name != "Vendor One" {
		t.Fatalf("unexpected vendor name: %q", vendor.Name)
	}
	if len(vendor.Devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(vendor.Devices))
	}

	device := reg.Device(0xabcd, 0x0124)
	if device == nil {
		t.Fatal("device abcd:0124 not found")
	}
	if device.Name != "Product Two" {
		t.Fatalf("unexpected device name: %q", device.Name)
	}
	if uint16(device.VendorID) != 0xabcd {
		t.Fatalf("device not linked to parent vendor: %v", device.VendorID)
	}
}

func TestParseInterfaces(t *testing.T) {
	reg := parseTestDB(t)

	device := reg.Device(0xefef, 0x0aba)
	if device == nil {
		t.Fatal("device efef:0aba not found")
	}
	if len(device.Interfaces) != 2 {
		t.Fatalf("expected 2 interfaces, got %d", len(device.Interfaces))
	}
	if device.Interfaces[1].Name != "Interface Two" {
		t.Fatalf("unexpected interface name: %q", device.Interfaces[1].Name)
	}

	// The sibling device keeps its own interface list.
	sibling := reg.Device(0xefef, 0x0abb)
	if sibling == nil {
		t.Fatal("device efef:0abb not found")
	}
	if len(sibling.Interfaces) != 1 {
		t.Fatalf("expected 1 interface, got %d", len(sibling.Interfaces))
	}
}

func TestParseClasses(t *testing.T) {
	reg := parseTestDB(t)

	if len(reg.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(reg.Classes))
	}

	protocol := reg.Protocol(0x01, 0x02, 0x01)
	if protocol == nil {
		t.Fatal("protocol 01:02:01 not found")
	}
	if protocol.Name != "Stream Protocol" {
		t.Fatalf("unexpected protocol name: %q", protocol.Name)
	}

	subclass := reg.SubClass(0x01, 0x01)
	if subclass == nil {
		t.Fatal("subclass 01:01 not found")
	}
	if len(subclass.Protocols) != 0 {
		t.Fatalf("subclass 01:01 should have no protocols, got %d", len(subclass.Protocols))
	}
}

func TestParseAuxiliarySections(t *testing.T) {
	reg := parseTestDB(t)

	if name, ok := reg.AudioTerminal(0x0101); !ok || name != "USB Streaming" {
		t.Fatalf("audio terminal 0101: got %q, %v", name, ok)
	}

	page := reg.UsagePage(0x01)
	if page == nil {
		t.Fatal("usage page 01 not found")
	}
	if usage := page.Usage(0x001); usage == nil || usage.Name != "Test Usage" {
		t.Fatalf("unexpected usage: %+v", usage)
	}

	lang := reg.Language(0x0009)
	if lang == nil {
		t.Fatal("language 0009 not found")
	}
	if dialect := lang.Dialect(0x01); dialect == nil || dialect.Name != "US" {
		t.Fatalf("unexpected dialect: %+v", dialect)
	}

	if name, ok := reg.CountryCode(0x21); !ok || name != "US" {
		t.Fatalf("country code 21: got %q, %v", name, ok)
	}
}

func TestParseSkipsUnknownSections(t *testing.T) {
	// testdb.txt ends with a "ZZ" section this parser does not know about;
	// it must load anyway.
	reg := parseTestDB(t)

	if _, found := reg.Vendors[0x9999]; found {
		t.Fatal("unknown section leaked into the vendor table")
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"orphan device":     "\t0123  Orphan",
		"orphan interface":  "abcd  Vendor\n\t\t12  Orphan",
		"orphan protocol":   "C 01  Audio\nC 02  Comms\n\t\t00  Orphan",
		"non-hex vendor":    "wxyz  Bad Vendor",
		"short vendor id":   "abc  Bad Vendor",
		"empty vendor name": "abcd  ",
		"malformed class":   "C 1  Bad Class",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseIDs(strings.NewReader(input))
			if err == nil {
				t.Fatalf("expected parse error for %q", input)
			}
			if !strings.Contains(err.Error(), "line ") {
				t.Fatalf("error should carry a line number: %v", err)
			}
			t.Log(err)
		})
	}
}

func TestParseBlankAndCommentLines(t *testing.T) {
	input := "# comment\n\nabcd  Vendor\n\n# another\n\t0001  Device\n"
	reg, err := ParseIDs(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if reg.Device(0xabcd, 0x0001) == nil {
		t.Fatal("device abcd:0001 not found")
	}
}
