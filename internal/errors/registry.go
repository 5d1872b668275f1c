package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

const docBase = "https://fastn.com/ftd/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Hydration Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: server-rendered node not found",
		DocURL:   docBase + "E040",
	},
	"E041": {
		Category: CategoryHydration,
		Message:  "Hydration state snapshot is invalid",
		DocURL:   docBase + "E041",
	},
	"E042": {
		Category: CategoryHydration,
		Message:  "Hydration document has no body",
		DocURL:   docBase + "E042",
	},

	// ============================================
	// Runtime Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryRuntime,
		Message:  "Invalid property kind",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryRuntime,
		Message:  "Invalid element kind",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryRuntime,
		Message:  "Invalid property value",
		DocURL:   docBase + "E103",
	},
	"E104": {
		Category: CategoryRuntime,
		Message:  "Element used after destroy",
		DocURL:   docBase + "E104",
	},

	// ============================================
	// Program Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryProgram,
		Message:  "Program decode failed",
		DocURL:   docBase + "E201",
	},
	"E202": {
		Category: CategoryProgram,
		Message:  "Unknown reference",
		DocURL:   docBase + "E202",
	},
	"E203": {
		Category: CategoryProgram,
		Message:  "Unbalanced block in instruction stream",
		DocURL:   docBase + "E203",
	},
	"E204": {
		Category: CategoryProgram,
		Message:  "Invalid program source",
		DocURL:   docBase + "E204",
	},

	// ============================================
	// Config Errors (E300-E319)
	// ============================================

	"E301": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		DocURL:   docBase + "E301",
	},
	"E302": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		DocURL:   docBase + "E302",
	},

	// ============================================
	// Publish Errors (E400-E419)
	// ============================================

	"E401": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		DocURL:   docBase + "E401",
	},
	"E402": {
		Category: CategoryPublish,
		Message:  "Publish target not configured",
		DocURL:   docBase + "E402",
	},

	// ============================================
	// Build Errors (E500-E519)
	// ============================================

	"E501": {
		Category: CategoryBuild,
		Message:  "Build output could not be written",
		DocURL:   docBase + "E501",
	},
	"E502": {
		Category: CategoryBuild,
		Message:  "Page not found",
		DocURL:   docBase + "E502",
	},

	// ============================================
	// CLI Errors (E600-E619)
	// ============================================

	"E601": {
		Category: CategoryCLI,
		Message:  "Project template not found",
		DocURL:   docBase + "E601",
	},
	"E602": {
		Category: CategoryCLI,
		Message:  "Invalid project name",
		DocURL:   docBase + "E602",
	},
	"E603": {
		Category: CategoryCLI,
		Message:  "Project directory already exists",
		DocURL:   docBase + "E603",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
