// Package catalog defines the fixed vocabulary of the destruction service:
// recognised equipment kinds, item conditions and processing methods.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidItemType = errors.New("invalid item type")

// ItemType describes one recognised kind of equipment and the tasks its
// destruction requires.
type ItemType struct {
	Code                 string
	Name                 string
	Prefix               string
	ExpectedQuantity     int
	RequiresLabelRemoval bool
	RequiresDataWipe     bool
	RequiresPhoto        bool
	Description          string
}

var itemTypes = map[string]ItemType{
	"CABINET": {
		Code:                 "CABINET",
		Name:                 "Charging Cabinet",
		Prefix:               "CAB",
		ExpectedQuantity:     85,
		RequiresLabelRemoval: true,
		RequiresPhoto:        true,
		Description:          "LBQ branded charging cabinet (remove all labels/branding before recycling)",
	},
	"TABLET_10_NEW": {
		Code:             "TABLET_10_NEW",
		Name:             `10" Tablet (New/Boxed)`,
		Prefix:           "T10N",
		ExpectedQuantity: 380,
		RequiresPhoto:    true,
		Description:      "New boxed 10-inch tablet - requires destruction with photo evidence",
	},
	"TABLET_8_NEW": {
		Code:             "TABLET_8_NEW",
		Name:             `8" Tablet (New/Boxed)`,
		Prefix:           "T8N",
		ExpectedQuantity: 400,
		RequiresPhoto:    true,
		Description:      "New boxed 8-inch tablet - requires destruction with photo evidence",
	},
	"TABLET_MIXED_USED": {
		Code:             "TABLET_MIXED_USED",
		Name:             `Mixed 8"/10" Tablet (Used Returns)`,
		Prefix:           "TMU",
		ExpectedQuantity: 1000,
		RequiresDataWipe: true,
		RequiresPhoto:    true,
		Description:      "Used returned tablet - requires secure wipe THEN destruction with photo evidence",
	},
	"REMOTE_KIT": {
		Code:             "REMOTE_KIT",
		Name:             "Handheld Remote Device Kit",
		Prefix:           "REM",
		ExpectedQuantity: 900,
		RequiresPhoto:    true,
		Description:      "Handheld remote device kit - requires destruction with photo evidence",
	},
	"COMPUTER_EQUIPMENT": {
		Code:             "COMPUTER_EQUIPMENT",
		Name:             "Office Computer Equipment",
		Prefix:           "COMP",
		RequiresDataWipe: true,
		RequiresPhoto:    true,
		Description:      "Office computer equipment including hard drives - requires secure destruction with certificates",
	},
}

// Conditions is the ordered item-condition vocabulary.
var Conditions = []string{
	"New/Sealed",
	"Used - Good",
	"Used - Fair",
	"Used - Poor",
	"Damaged",
	"For Parts",
}

var DestructionMethods = []string{
	"Physical Shredding",
	"Crushing",
	"Degaussing + Physical Destruction",
	"Secure Disassembly + Recycling",
}

var DataWipeMethods = []string{
	"DoD 5220.22-M (3-pass)",
	"NIST 800-88 (Secure Erase)",
	"Blancco Certified Wipe",
	"Physical Destruction (No Wipe Required)",
}

// Lookup returns the item type for a code, or ErrInvalidItemType.
func Lookup(code string) (ItemType, error) {
	t, ok := itemTypes[code]
	if !ok {
		return ItemType{}, fmt.Errorf("%w: %s", ErrInvalidItemType, code)
	}
	return t, nil
}

// LookupByName resolves an item type by its display name.
func LookupByName(name string) (ItemType, bool) {
	for _, t := range itemTypes {
		if t.Name == name {
			return t, true
		}
	}
	return ItemType{}, false
}

// All returns every item type, ordered by code.
func All() []ItemType {
	types := make([]ItemType, 0, len(itemTypes))
	for _, t := range itemTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Code < types[j].Code })
	return types
}

// ValidCondition reports whether the condition is in the standard vocabulary.
// Non-standard conditions are allowed on intake; callers warn, not fail.
func ValidCondition(condition string) bool {
	for _, c := range Conditions {
		if c == condition {
			return true
		}
	}
	return false
}

// FolderName returns the filesystem-safe folder name for an item type.
func (t ItemType) FolderName() string {
	name := strings.ReplaceAll(t.Name, "/", "_")
	return strings.ReplaceAll(name, `"`, "")
}

// Requirements summarises the processing tasks for display.
func (t ItemType) Requirements() string {
	var reqs []string
	if t.RequiresLabelRemoval {
		reqs = append(reqs, "Label Removal")
	}
	if t.RequiresDataWipe {
		reqs = append(reqs, "Data Wipe")
	}
	if t.RequiresPhoto {
		reqs = append(reqs, "Photo Evidence")
	}
	if len(reqs) == 0 {
		return "Destruction Only"
	}
	return strings.Join(reqs, ", ")
}
