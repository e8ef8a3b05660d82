package usbids

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpnorenam/usb-ids/pkg/types"
)

// section tracks which top-level block of the registry file is being parsed.
// Indented lines are ambiguous without it; a device line and a subclass line
// look the same.
type section int

const (
	sectionVendors section = iota
	sectionClasses
	sectionAudioTerminals
	sectionHIDDescriptorTypes
	sectionHIDItemTypes
	sectionPhysicalBiases
	sectionPhysicalItems
	sectionUsagePages
	sectionLanguages
	sectionCountryCodes
	sectionVideoTerminals
	sectionUnknown
)

// ParseIDs parses a usb.ids snapshot into a Registry.
//
// The format is line-oriented: vendors first (4 hex digits, two spaces, name)
// with TAB-indented devices and double-TAB interfaces, then classes ("C xx")
// with subclasses and protocols, then the flat and two-level auxiliary
// sections (AT, HID, R, BIAS, PHY, HUT, L, HCC, VT). Blank lines and comments
// are skipped. Sections this parser does not recognize are skipped without
// error, so a snapshot newer than the parser still loads.
func ParseIDs(r io.Reader) (*Registry, error) {
	reg := newRegistry()

	var (
		sect          = sectionVendors
		currVendor    *Vendor
		currDevice    *Device
		currClass     *Class
		currSubClass  *SubClass
		currLanguage  *Language
		currUsagePage *UsagePage
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			reg.scanHeaderComment(line)
			continue
		}

		if strings.HasPrefix(line, "\t") {
			var err error
			switch sect {
			case sectionVendors:
				currDevice, err = parseVendorChild(line, currVendor, currDevice)
			case sectionClasses:
				currSubClass, err = parseClassChild(line, currClass, currSubClass)
			case sectionUsagePages:
				err = parseUsage(line, currUsagePage)
			case sectionLanguages:
				err = parseDialect(line, currLanguage)
			default:
				// Flat and unrecognized sections carry no children we track.
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNo, err)
			}
			continue
		}

		// A new top-level entry closes any open parent chain.
		currVendor, currDevice = nil, nil
		currClass, currSubClass = nil, nil
		currLanguage, currUsagePage = nil, nil

		tag, rest, _ := strings.Cut(line, " ")
		switch tag {
		case "C":
			sect = sectionClasses
			id, name, err := parseEntry(rest, 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: class: %v", lineNo, err)
			}
			currClass = &Class{ID: types.HexByte(id), Name: name}
			reg.Classes[uint8(id)] = currClass
		case "AT":
			sect = sectionAudioTerminals
			if err := parseNamed(rest, 16, lineNo, "audio terminal type", reg.AudioTerminals); err != nil {
				return nil, err
			}
		case "HID":
			sect = sectionHIDDescriptorTypes
			if err := parseNamed8(rest, lineNo, "HID descriptor type", reg.HIDDescriptorTypes); err != nil {
				return nil, err
			}
		case "R":
			sect = sectionHIDItemTypes
			if err := parseNamed8(rest, lineNo, "HID item type", reg.HIDItemTypes); err != nil {
				return nil, err
			}
		case "BIAS":
			sect = sectionPhysicalBiases
			if err := parseNamed8(rest, lineNo, "physical bias", reg.PhysicalBiases); err != nil {
				return nil, err
			}
		case "PHY":
			sect = sectionPhysicalItems
			if err := parseNamed8(rest, lineNo, "physical item type", reg.PhysicalItems); err != nil {
				return nil, err
			}
		case "HUT":
			sect = sectionUsagePages
			id, name, err := parseLoose(rest, 16)
			if err != nil {
				return nil, fmt.Errorf("line %d: usage page: %v", lineNo, err)
			}
			currUsagePage = &UsagePage{ID: types.HexInt(id), Name: name}
			reg.UsagePages[uint16(id)] = currUsagePage
		case "L":
			sect = sectionLanguages
			id, name, err := parseLoose(rest, 16)
			if err != nil {
				return nil, fmt.Errorf("line %d: language: %v", lineNo, err)
			}
			currLanguage = &Language{ID: types.HexInt(id), Name: name}
			reg.Languages[uint16(id)] = currLanguage
		case "HCC":
			sect = sectionCountryCodes
			if err := parseNamed8(rest, lineNo, "country code", reg.CountryCodes); err != nil {
				return nil, err
			}
		case "VT":
			sect = sectionVideoTerminals
			if err := parseNamed(rest, 16, lineNo, "video terminal type", reg.VideoTerminals); err != nil {
				return nil, err
			}
		default:
			if sect != sectionVendors {
				// An unrecognized section tag after the vendor block; skip
				// the section rather than rejecting a newer snapshot.
				sect = sectionUnknown
				continue
			}
			id, name, err := parseEntry(line, 4)
			if err != nil {
				return nil, fmt.Errorf("line %d: vendor: %v", lineNo, err)
			}
			currVendor = &Vendor{ID: types.HexInt(id), Name: name}
			reg.Vendors[uint16(id)] = currVendor
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ids: %v", err)
	}

	return reg, nil
}

func parseVendorChild(line string, vendor *Vendor, device *Device) (*Device, error) {
	if strings.HasPrefix(line, "\t\t") {
		if device == nil {
			return nil, fmt.Errorf("interface without a parent device: %q", line)
		}
		id, name, err := parseEntry(line[2:], 2)
		if err != nil {
			return nil, fmt.Errorf("interface: %v", err)
		}
		device.Interfaces = append(device.Interfaces, Interface{ID: types.HexByte(id), Name: name})
		return device, nil
	}

	if vendor == nil {
		return nil, fmt.Errorf("device without a parent vendor: %q", line)
	}
	id, name, err := parseEntry(line[1:], 4)
	if err != nil {
		return nil, fmt.Errorf("device: %v", err)
	}
	vendor.Devices = append(vendor.Devices, Device{
		VendorID: vendor.ID,
		ID:       types.HexInt(id),
		Name:     name,
	})
	return &vendor.Devices[len(vendor.Devices)-1], nil
}

func parseClassChild(line string, class *Class, subclass *SubClass) (*SubClass, error) {
	if strings.HasPrefix(line, "\t\t") {
		if subclass == nil {
			return nil, fmt.Errorf("protocol without a parent subclass: %q", line)
		}
		id, name, err := parseEntry(line[2:], 2)
		if err != nil {
			return nil, fmt.Errorf("protocol: %v", err)
		}
		subclass.Protocols = append(subclass.Protocols, Protocol{ID: types.HexByte(id), Name: name})
		return subclass, nil
	}

	if class == nil {
		return nil, fmt.Errorf("subclass without a parent class: %q", line)
	}
	id, name, err := parseEntry(line[1:], 2)
	if err != nil {
		return nil, fmt.Errorf("subclass: %v", err)
	}
	class.SubClasses = append(class.SubClasses, SubClass{
		ClassID: class.ID,
		ID:      types.HexByte(id),
		Name:    name,
	})
	return &class.SubClasses[len(class.SubClasses)-1], nil
}

func parseUsage(line string, page *UsagePage) error {
	if page == nil {
		return fmt.Errorf("usage without a parent usage page: %q", line)
	}
	id, name, err := parseLoose(line[1:], 16)
	if err != nil {
		return fmt.Errorf("usage: %v", err)
	}
	page.Usages = append(page.Usages, Usage{ID: types.HexInt(id), Name: name})
	return nil
}

func parseDialect(line string, lang *Language) error {
	if lang == nil {
		return fmt.Errorf("dialect without a parent language: %q", line)
	}
	id, name, err := parseLoose(line[1:], 8)
	if err != nil {
		return fmt.Errorf("dialect: %v", err)
	}
	lang.Dialects = append(lang.Dialects, Dialect{ID: types.HexByte(id), Name: name})
	return nil
}

// parseEntry splits "<id>  <name>" where the id is exactly width hex digits
// followed by two spaces. Vendors and devices use width 4, everything under
// the class block uses width 2.
func parseEntry(s string, width int) (uint64, string, error) {
	if len(s) < width+3 || s[width:width+2] != "  " {
		return 0, "", fmt.Errorf("malformed entry %q", s)
	}
	id, err := strconv.ParseUint(s[:width], 16, width*4)
	if err != nil {
		return 0, "", fmt.Errorf("malformed id in %q", s)
	}
	name := strings.TrimSpace(s[width+2:])
	if name == "" {
		return 0, "", fmt.Errorf("empty name in %q", s)
	}
	return id, name, nil
}

// parseLoose splits "<id>  <name>" accepting any id width up to bits; the
// auxiliary sections are not uniform (BIAS uses one digit, HUT usages three).
func parseLoose(s string, bits int) (uint64, string, error) {
	idStr, name, ok := strings.Cut(s, "  ")
	if !ok {
		return 0, "", fmt.Errorf("malformed entry %q", s)
	}
	id, err := strconv.ParseUint(idStr, 16, bits)
	if err != nil {
		return 0, "", fmt.Errorf("malformed id in %q", s)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, "", fmt.Errorf("empty name in %q", s)
	}
	return id, name, nil
}

func parseNamed(rest string, bits, lineNo int, what string, into map[uint16]string) error {
	id, name, err := parseLoose(rest, bits)
	if err != nil {
		return fmt.Errorf("line %d: %s: %v", lineNo, what, err)
	}
	into[uint16(id)] = name
	return nil
}

func parseNamed8(rest string, lineNo int, what string, into map[uint8]string) error {
	id, name, err := parseLoose(rest, 8)
	if err != nil {
		return fmt.Errorf("line %d: %s: %v", lineNo, what, err)
	}
	into[uint8(id)] = name
	return nil
}

// scanHeaderComment picks the snapshot version and date out of the header
// comment block. Only the first occurrence counts.
func (r *Registry) scanHeaderComment(line string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	if v, ok := strings.CutPrefix(rest, "Version:"); ok && r.Version == "" {
		r.Version = strings.TrimSpace(v)
	} else if d, ok := strings.CutPrefix(rest, "Date:"); ok && r.Date == "" {
		r.Date = strings.TrimSpace(d)
	}
}
