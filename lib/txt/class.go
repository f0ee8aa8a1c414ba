//
// (C) Copyright 2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package txt

import (
	"fmt"
	"sort"
)

// ClassCode identifies which group of launch-time checks failed.
type ClassCode uint8

// Class codes reported by the BIOS ACM and/or SINIT ACM.
const (
	ClassAcmEntry            ClassCode = 0x1
	ClassMtrrCheck           ClassCode = 0x2
	ClassTpmAccess           ClassCode = 0x4
	ClassLaunchControlPolicy ClassCode = 0x6
	ClassHeapTableData       ClassCode = 0x9
	ClassPmrConfiguration    ClassCode = 0xe
	ClassMleHeaderCheck      ClassCode = 0xf
	ClassMlePageTablesCheck  ClassCode = 0x10
	ClassEventLog            ClassCode = 0x14
)

const (
	// BadClassCode is reported for class codes missing from the table.
	BadClassCode = "bad class code"
	// BadMajorErrorCode is reported for major codes missing from a known
	// class's table.
	BadMajorErrorCode = "bad major error code"
)

type classEntry struct {
	name   string
	majors map[uint8]string
}

// NB: The descriptions are reproduced exactly as published, including
// missing spaces ("orServer", "exceedssupported", "butnot", "datatables",
// "OsSinitDatatable") and the doubled space in the page table order rule.
var classTable = map[ClassCode]classEntry{
	ClassAcmEntry: {
		name: "ACM_ENTRY_BIOS_AC_AND_SINIT",
		majors: map[uint8]string{
			0x1: "error in ACM launching",
			// TODO: confirm with the ACM owners whether "orServer" should read "or Server".
			0x3: "client SINIT detected LTSX fused processor orServer SINIT detected non- LTSX fused processor",
			0x9: "ACM is revoked",
		},
	},
	ClassMtrrCheck: {
		name: "MTRR_CHECK_BIOS_AC_AND_SINIT",
		majors: map[uint8]string{
			0x1: "MTRR Rule 1 Error",
			0x2: "MTRR Rule 2 Error",
			0x3: "MTRR Rule 3 Error",
			0x4: "MTRR Rule 4 Error",
			0x5: "MTRR Rule 5 Error",
			0x6: "MTRR Rule 6 Error",
			0x7: "invalid MTRR mask value",
		},
	},
	ClassTpmAccess: {
		name: "TPM_ACCESS_BIOS_AC_AND_SINIT",
		majors: map[uint8]string{
			0x1:  "TPM returned an error",
			0x5:  "TPM 1.2 disabled",
			0x6:  "TPM 1.2 deactivated",
			0xd:  "TPM 2.0 interface type (FIFO/CRB) not supported",
			0xe:  "TPM family (1.2/2.0) not supported",
			0xf:  "Discovered number of TPM 2.0 PCR banks exceedssupported maximum (3)",
			0x10: "Required TPM hash algorithm not supported",
		},
	},
	ClassLaunchControlPolicy: {
		name: "LAUNCH_CONTROL_POLICY_BIOS_AC_AND_SINIT",
		majors: map[uint8]string{
			0x2: "SINIT version is below minimum specified in TPM NV policy index",
			0x4: "No match is found for Policy Element",
			0x5: "Auto-promotion failed. BIOS hash differs from hash value saved in AUX index",
			0x6: "Failsafe boot failed. (FIT table not found or corrupted)",
			0x7: "PO integrity check failed",
			0x8: "PS integrity check failed",
			0x9: "No policies are defined to allow NPW execution",
			0xa: "PS TPM NV policy index is required butnot defined",
		},
	},
	ClassHeapTableData: {
		name: "HEAP_TABLE_DATA_SINIT",
		majors: map[uint8]string{
			0x1: "Invalid size of one of the heap data tables",
			0x2: "Invalid version of one of the heap datatables",
			0x3: "Invalid PMR Low range alignment",
			0x4: "Invalid PMR High range alignment",
			0x5: "Invalid MLE placement (Above 4GB)",
			0x6: "Invalid MLE requested capabilities",
			0x7: "Heap region is overfilled",
			0x8: "Unsupported heap extended element type",
			0x9: "Invalid heap extended element size",
			0xa: `Heap table is not terminated by the extended "END" element`,
			0xb: "Invalid event log pointer",
			0xc: "Invalid RSDT/RSDP pointer in OsSinitDatatable",
		},
	},
	ClassPmrConfiguration: {
		name: "PMR_CONFIGURATION_SINIT",
		majors: map[uint8]string{
			0x1: "DMA remapping is enabled",
			0x2: "Invalid PMR Low configuration",
			0x3: "Invalid PMR High configuration",
		},
	},
	ClassMleHeaderCheck: {
		name: "MLE_HEADER_CHECK_SINIT",
		majors: map[uint8]string{
			0x1: "MLE Header linear address conversion error",
			0x2: "Invalid MLE GUID",
			0x3: "Invalid MLE version",
			0x4: "Invalid first page address",
			0x5: "Invalid MLE size",
			0x6: "Invalid MLE entry point address",
			0x7: "Incompatible RLM wake-up method",
		},
	},
	ClassMlePageTablesCheck: {
		name: "MLE_PAGE_TABLES_CHECK_SINIT",
		majors: map[uint8]string{
			0x1: "Page placement error",
			0x2: "MLE page order rule failure - next page is not above previous one",
			0x3: "Discovered big page (2MB)",
			0x4: "Page Table order rule failure - PDPT, PDT, PT,  MLE pages are not in ascending order",
			0x5: "Invalid MLE hashed size",
			0x6: "Invalid RLP entry point address",
		},
	},
	ClassEventLog: {
		name: "EVENT_LOG_SINIT",
		majors: map[uint8]string{
			0x1: "Invalid Log Header GUID",
			0x2: "Invalid Log Header version",
			0x3: "Inconsistent values of header fields",
			0x4: "Insufficient log size",
			0x5: "Unsupported record version",
		},
	},
}

// IsKnown reports whether the class code has an entry in the table.
func (cc ClassCode) IsKnown() bool {
	_, found := classTable[cc]
	return found
}

func (cc ClassCode) String() string {
	if entry, found := classTable[cc]; found {
		return entry.name
	}
	return fmt.Sprintf("ClassCode(0x%02x)", uint8(cc))
}

// MajorCodes returns the major error codes defined for the class,
// in ascending order. Unknown classes have none.
func (cc ClassCode) MajorCodes() []uint8 {
	entry, found := classTable[cc]
	if !found {
		return nil
	}

	codes := make([]uint8, 0, len(entry.majors))
	for major := range entry.majors {
		codes = append(codes, major)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// ClassCodes returns all known class codes in ascending order.
func ClassCodes() []ClassCode {
	classes := make([]ClassCode, 0, len(classTable))
	for cc := range classTable {
		classes = append(classes, cc)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

// Classification is the result of looking up a class code and major
// error code pair.
type Classification struct {
	ClassName   string `json:"class_name,omitempty"`
	Description string `json:"description"`
	KnownClass  bool   `json:"known_class"`
	KnownMajor  bool   `json:"known_major"`
}

// Classify looks up the class code, then the major error code within
// that class's table. An unknown class code short-circuits the major
// code lookup.
func Classify(cc ClassCode, major uint8) Classification {
	entry, found := classTable[cc]
	if !found {
		return Classification{Description: BadClassCode}
	}

	c := Classification{
		ClassName:   entry.name,
		KnownClass:  true,
		Description: BadMajorErrorCode,
	}
	if desc, found := entry.majors[major]; found {
		c.Description = desc
		c.KnownMajor = true
	}
	return c
}
