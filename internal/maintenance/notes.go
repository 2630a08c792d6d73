package maintenance

import "strings"

// MaintenanceType is the typed classification of a maintenance block,
// parsed from the leading "{type}:" token of its free-text notes.
type MaintenanceType string

const (
	MaintenanceTypeAPKInspection   MaintenanceType = "apk_inspection"
	MaintenanceTypeWarrantyService MaintenanceType = "warranty_service"
	MaintenanceTypeOilChange       MaintenanceType = "oil_change"
	MaintenanceTypeTireChange      MaintenanceType = "tire_change"
	MaintenanceTypeInspection      MaintenanceType = "inspection"
	MaintenanceTypeRepair          MaintenanceType = "repair"
	MaintenanceTypeCleaning        MaintenanceType = "cleaning"
	MaintenanceTypeUnknown         MaintenanceType = ""
)

// genericMaintenanceLabel is used when the notes carry no recognizable
// maintenance type token.
const genericMaintenanceLabel = "Scheduled maintenance"

var maintenanceTypeLabels = map[MaintenanceType]string{
	MaintenanceTypeAPKInspection:   "APK inspection",
	MaintenanceTypeWarrantyService: "Warranty service",
	MaintenanceTypeOilChange:       "Oil change",
	MaintenanceTypeTireChange:      "Tire change",
	MaintenanceTypeInspection:      "Inspection",
	MaintenanceTypeRepair:          "Repair",
	MaintenanceTypeCleaning:        "Cleaning",
}

// NoteClassification is the typed result of parsing a maintenance block's
// notes field.
type NoteClassification struct {
	Type  MaintenanceType
	Known bool
	// Label is the display title for the block; the generic label when
	// the type token is missing or unrecognized.
	Label string
	// Detail is the free text following the type token, trimmed.
	Detail string
}

// ClassifyNotes parses the ad hoc "{maintenanceType}: detail" convention
// used in maintenance block notes into a typed classification. Notes
// without a recognizable token classify as unknown with a generic label;
// parsing never fails.
func ClassifyNotes(notes *string) NoteClassification {
	unknown := NoteClassification{Type: MaintenanceTypeUnknown, Label: genericMaintenanceLabel}

	if notes == nil {
		return unknown
	}

	head, rest, found := strings.Cut(*notes, ":")
	if !found {
		return unknown
	}

	token := MaintenanceType(strings.ToLower(strings.TrimSpace(head)))
	label, ok := maintenanceTypeLabels[token]
	if !ok {
		unknown.Detail = strings.TrimSpace(rest)
		return unknown
	}

	return NoteClassification{
		Type:   token,
		Known:  true,
		Label:  label,
		Detail: strings.TrimSpace(rest),
	}
}
